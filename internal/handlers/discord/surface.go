package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/fortunabot/fortuna/internal/services/round"
)

// messageSurface renders a round into a single Discord message. The round
// engine pushes snapshots at it and polls Exists to notice a deleted message.
type messageSurface struct {
	session   *discordgo.Session
	channelID string
	messageID string
}

func newMessageSurface(session *discordgo.Session, channelID, messageID string) *messageSurface {
	return &messageSurface{
		session:   session,
		channelID: channelID,
		messageID: messageID,
	}
}

// Update edits the message in place with the rendered snapshot
func (m *messageSurface) Update(_ context.Context, view *round.View) error {
	embed, components := renderView(view)

	embeds := []*discordgo.MessageEmbed{embed}
	_, err := m.session.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    m.channelID,
		ID:         m.messageID,
		Embeds:     &embeds,
		Components: &components,
	})
	return err
}

// Exists reports whether the message can still be fetched
func (m *messageSurface) Exists(context.Context) bool {
	_, err := m.session.ChannelMessage(m.channelID, m.messageID)
	return err == nil
}
