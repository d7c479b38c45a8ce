/*
Package arena implements an append-only, concurrency-safe store for values of
a single type.

An arena hands out a location handle (a Ref) for every value allocated in it.
Values are kept in chunks of fixed capacity. A chunk is never grown past its
capacity, so once allocated, a value never moves: a Ref stays valid for as long
as it is reachable. There is no way to free an individual value; an arena only
ever grows.

The only synchronization point is the allocation step, which is serialized by
a single mutex per arena. Dereferencing a Ref needs no locking.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package arena

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cowvec.arena'.
func tracer() tracing.Trace {
	return tracing.Select("cowvec.arena")
}
