package scanner

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/Dooez/libunicode/properties"
)

// clusterBuffer is the short-lived scratch space ScanText uses to hold one
// grapheme cluster's worth of decoded records while it decides whether the
// cluster fits the caller's column budget. Clusters are scanned one after
// another in the hot loop, so rather than allocate a fresh slice per
// cluster, ScanText borrows one pooled instance per call and resets it
// for each cluster.
type clusterBuffer struct {
	records []recordEntry
}

type recordEntry struct {
	record properties.Record
}

func (c *clusterBuffer) reset() {
	c.records = c.records[:0]
}

var (
	clusterPool    *pool.ObjectPool
	clusterPoolCtx = context.Background()
)

func init() {
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &clusterBuffer{records: make([]recordEntry, 0, 8)}, nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1
	config.BlockWhenExhausted = false
	clusterPool = pool.NewObjectPool(clusterPoolCtx, factory, config)
}

func borrowClusterBuffer() *clusterBuffer {
	o, err := clusterPool.BorrowObject(clusterPoolCtx)
	if err != nil {
		// The pool is configured to never block and never cap capacity;
		// BorrowObject only fails if the factory itself returns an error,
		// which ours never does.
		return &clusterBuffer{records: make([]recordEntry, 0, 8)}
	}
	return o.(*clusterBuffer)
}

func releaseClusterBuffer(c *clusterBuffer) {
	c.reset()
	_ = clusterPool.ReturnObject(clusterPoolCtx, c)
}
