// Package lock provides per-identity locking so concurrent balance
// mutations against the same account serialize instead of losing updates.
package lock

import "sync"

// KeyedMutex hands out one mutex per key.
type KeyedMutex struct {
	locks sync.Map // map[string]*sync.Mutex
}

// New creates a new KeyedMutex.
func New() *KeyedMutex {
	return &KeyedMutex{}
}

func (k *KeyedMutex) get(key string) *sync.Mutex {
	if v, ok := k.locks.Load(key); ok {
		return v.(*sync.Mutex)
	}
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// Lock acquires the lock for a key.
func (k *KeyedMutex) Lock(key string) {
	k.get(key).Lock()
}

// Unlock releases the lock for a key.
func (k *KeyedMutex) Unlock(key string) {
	if v, ok := k.locks.Load(key); ok {
		v.(*sync.Mutex).Unlock()
	}
}

// WithLock runs fn while holding the key's lock.
func (k *KeyedMutex) WithLock(key string, fn func() error) error {
	k.Lock(key)
	defer k.Unlock(key)
	return fn()
}
