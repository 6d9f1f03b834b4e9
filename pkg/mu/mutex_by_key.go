package mu

import "sync"

// MutexByKey hands out one RWMutex per key. The zero value is ready to use.
type MutexByKey struct {
	guard sync.Mutex
	locks map[string]*sync.RWMutex
}

func (mbk *MutexByKey) GetOrCreate(key string) *sync.RWMutex {
	mbk.guard.Lock()
	defer mbk.guard.Unlock()

	if mbk.locks == nil {
		mbk.locks = make(map[string]*sync.RWMutex)
	}
	l, ok := mbk.locks[key]
	if !ok {
		l = &sync.RWMutex{}
		mbk.locks[key] = l
	}

	return l
}
