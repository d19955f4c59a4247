package registry_test

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/yvesdum/rscontainer/access"
	"github.com/yvesdum/rscontainer/registry"
)

// Test services. Capability methods use value receivers so the registry can
// invoke them on the zero value.

// cachedNumber resolves to 1234 shared and 2468 local by default.
type cachedNumber struct {
	n uint32
}

func (cachedNumber) ConstructShared(registry.Scope) (access.Guard[cachedNumber], error) {
	return access.NewPlain(cachedNumber{n: 1234}), nil
}

func (cachedNumber) ConstructLocal(registry.Scope, struct{}) (cachedNumber, error) {
	return cachedNumber{n: 2468}, nil
}

// failing always fails shared construction with errBoom.
type failing struct{}

var errBoom = errors.New("boom")

func (failing) ConstructShared(registry.Scope) (access.Guard[failing], error) {
	return nil, errBoom
}

// onceService counts shared constructor runs.
type onceService struct{}

var onceServiceRuns atomic.Int32

func (onceService) ConstructShared(registry.Scope) (access.Guard[onceService], error) {
	onceServiceRuns.Add(1)
	return access.NewMutex(onceService{}), nil
}

// journal is a local-only service recording timestamps; journalRuns tracks
// how often its default constructor ran.
type journal struct {
	stamps []time.Time
}

var journalRuns atomic.Int32

func (journal) ConstructLocal(registry.Scope, struct{}) (journal, error) {
	journalRuns.Add(1)
	return journal{}, nil
}

// tally is a shared counter depending on a local journal injected at
// construction time.
type tally struct {
	count int
	log   journal
}

func (tally) ConstructShared(scope registry.Scope) (access.Guard[tally], error) {
	log, err := registry.ResolveLocal[journal](scope, struct{}{})
	if err != nil {
		return nil, err
	}
	return access.NewMutex(tally{log: log}), nil
}

// gauge implements io.Closer; Close bumps the shared counter so finalizer
// runs are observable.
type gauge struct {
	closed *int32
}

func (g gauge) Close() error {
	atomic.AddInt32(g.closed, 1)
	return nil
}

func (gauge) ConstructShared(registry.Scope) (access.Guard[gauge], error) {
	return access.NewPlain(gauge{closed: new(int32)}), nil
}

// hooked counts post-resolution hook runs next to constructor runs.
type hooked struct{}

var (
	hookedCtorRuns atomic.Int32
	hookedHookRuns atomic.Int32
)

func (hooked) ConstructShared(registry.Scope) (access.Guard[hooked], error) {
	hookedCtorRuns.Add(1)
	return access.NewPlain(hooked{}), nil
}

func (hooked) ResolvedShared(registry.Shared[hooked], registry.Scope) {
	hookedHookRuns.Add(1)
}

// stamped observes the local post-resolution hook.
type stamped struct {
	wired bool
}

func (stamped) ConstructLocal(registry.Scope, struct{}) (stamped, error) {
	return stamped{}, nil
}

func (stamped) ResolvedLocal(inst *stamped, _ registry.Scope) {
	inst.wired = true
}

// pingService and pongService form a shared dependency cycle broken through
// the post-resolution hook: ping constructs with a placeholder and wires both
// directions once, after its own handle is cached.
type pingService struct {
	pong  registry.Shared[pongService]
	wired bool
}

type pongService struct {
	ping registry.Shared[pingService]
}

func (pingService) ConstructShared(registry.Scope) (access.Guard[pingService], error) {
	return access.NewPlain(pingService{}), nil
}

func (pingService) ResolvedShared(inst registry.Shared[pingService], scope registry.Scope) {
	var wired bool
	inst.View(func(p access.Poisoning[*pingService]) {
		wired = p.AssertHealthy().wired
	})
	if wired {
		return
	}

	pong, err := registry.ResolveShared[pongService](scope)
	if err != nil {
		return
	}
	inst.Update(func(p access.Poisoning[*pingService]) {
		v := p.AssertHealthy()
		v.pong = pong
		v.wired = true
	})
	pong.Update(func(p access.Poisoning[*pongService]) {
		p.AssertHealthy().ping = inst.Clone()
	})
}

func (pongService) ConstructShared(registry.Scope) (access.Guard[pongService], error) {
	return access.NewPlain(pongService{}), nil
}
