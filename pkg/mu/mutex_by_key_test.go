package mu

import (
	"sync"
	"testing"
)

func TestMutexByKey_GetOrCreate(t *testing.T) {
	var mbk MutexByKey

	a := mbk.GetOrCreate("pk-1")
	b := mbk.GetOrCreate("pk-1")
	c := mbk.GetOrCreate("pk-2")

	if a != b {
		t.Error("expected the same mutex for the same key")
	}
	if a == c {
		t.Error("expected different mutexes for different keys")
	}
}

func TestMutexByKey_Concurrent(t *testing.T) {
	var mbk MutexByKey
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := mbk.GetOrCreate("shared")
			l.Lock()
			l.Unlock()
		}()
	}

	wg.Wait()
}
