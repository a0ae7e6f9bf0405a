package lock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLockSerializesSameKey(t *testing.T) {
	km := New()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = km.WithLock("user-1", func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

func TestDifferentKeysDoNotBlock(t *testing.T) {
	km := New()

	km.Lock("user-1")
	defer km.Unlock("user-1")

	done := make(chan struct{})
	go func() {
		km.Lock("user-2")
		km.Unlock("user-2")
		close(done)
	}()

	<-done
}

func TestUnlockUnknownKeyIsNoop(t *testing.T) {
	km := New()
	assert.NotPanics(t, func() { km.Unlock("never-locked") })
}
