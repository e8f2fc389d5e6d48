package cache

// hitResult is the outcome of a getOrClaim call: either a (possibly
// still invalid) existing entry, or a fresh claim the caller must fill
// or release.
type hitResult[T any] struct {
	data    T
	valid   bool
	claimed bool
}

type Cache[T any] interface {
	getOrClaim(key string) hitResult[T]
	set(key string, data T)
	delete(key string)
	wait()
}
