// SPDX-License-Identifier: GPL-2.0-or-later

// Package export feeds elements to a single writer in input order while
// preparing upcoming elements concurrently.
package export

import (
	"context"
	"log"
	"sync"

	"github.com/pkg/errors"

	"objexport/conlog"
	"objexport/math/vec"
	"objexport/mesh"
)

// Writer consumes elements one at a time. Vertex index offsets make the
// order of calls significant.
type Writer interface {
	Write(e *mesh.Element) error
}

type Options struct {
	// Workers preparing elements, at least one is used.
	Workers int
	// SkipMalformed logs and drops malformed elements instead of failing.
	SkipMalformed bool
}

type Stats struct {
	Written  int
	Skipped  int
	Vertices int
	Faces    int
}

type prepared struct {
	e     *mesh.Element
	err   error
	mins  vec.Vec3
	maxs  vec.Vec3
	bound bool
}

func prepare(e *mesh.Element) prepared {
	p := prepared{e: e}
	if err := e.Mesh.Validate(); err != nil {
		p.err = err
		return p
	}
	p.mins, p.maxs, p.bound = vec.Bounds(e.Mesh.Vertices)
	return p
}

type job struct {
	e   *mesh.Element
	out chan<- prepared
}

// Run writes elements to w in slice order. Cancellation is honoured between
// elements, never inside one.
func Run(ctx context.Context, w Writer, elements []*mesh.Element, opts Options) (Stats, error) {
	var stats Stats
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	// cancel first so the producer can leave, then wait for everyone
	defer wg.Wait()
	defer cancel()

	jobs := make(chan job)
	// one result slot per element, queued in input order
	order := make(chan chan prepared, workers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(jobs)
		defer close(order)
		for _, e := range elements {
			slot := make(chan prepared, 1)
			select {
			case order <- slot:
			case <-ctx.Done():
				return
			}
			select {
			case jobs <- job{e: e, out: slot}:
			case <-ctx.Done():
				return
			}
		}
	}()
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				j.out <- prepare(j.e)
			}
		}()
	}
	for slot := range order {
		var p prepared
		select {
		case p = <-slot:
		case <-ctx.Done():
			return stats, ctx.Err()
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if p.err != nil {
			if opts.SkipMalformed && errors.Is(p.err, mesh.ErrMalformed) {
				log.Printf("skipping element %s: %v", p.e.UniqueID, p.err)
				conlog.Printf("skipping element %s: %v\n", p.e.UniqueID, p.err)
				stats.Skipped++
				continue
			}
			return stats, errors.Wrapf(p.err, "element %s", p.e.UniqueID)
		}
		if err := w.Write(p.e); err != nil {
			return stats, errors.Wrapf(err, "writing element %s", p.e.UniqueID)
		}
		stats.Written++
		stats.Vertices += len(p.e.Mesh.Vertices)
		stats.Faces += len(p.e.Mesh.Faces)
		if p.bound {
			ext := vec.Sub(p.maxs, p.mins)
			conlog.DPrintf("%s: %d vertices, %d faces, center %v, diagonal %v\n",
				p.e.UniqueID, len(p.e.Mesh.Vertices), len(p.e.Mesh.Faces),
				vec.Center(p.mins, p.maxs), ext.Length())
		} else {
			conlog.DPrintf("%s: empty\n", p.e.UniqueID)
		}
	}
	if stats.Written+stats.Skipped == len(elements) {
		return stats, nil
	}
	return stats, ctx.Err()
}
