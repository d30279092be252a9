package view

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/geocoder89/userdesk/internal/domain/user"
	"github.com/geocoder89/userdesk/internal/reconcile"
)

var (
	ErrLoading      = errors.New("users are still loading")
	ErrUserNotFound = errors.New("user not found")
)

type Fetcher interface {
	Fetch(ctx context.Context) ([]user.User, error)
}

// Recorder receives one call per operation. result is "ok" or a short error class.
type Recorder interface {
	ObserveOp(op, result string)
}

type Snapshot struct {
	Loading   bool        `json:"loading" yaml:"loading"`
	Mode      string      `json:"mode" yaml:"mode"`
	EditingID *int        `json:"editingId" yaml:"editingId"`
	Form      user.Form   `json:"form" yaml:"form"`
	Users     []user.User `json:"items" yaml:"items"`
	Version   uint64      `json:"version" yaml:"version"`
}

// View owns the user list and form for one view lifetime. All operations run
// under one lock so no two transitions interleave.
type View struct {
	mu      sync.Mutex
	state   reconcile.State
	loading bool
	version uint64

	once    sync.Once
	fetcher Fetcher
	log     *slog.Logger
	rec     Recorder
}

func New(fetcher Fetcher, policy reconcile.IDPolicy, log *slog.Logger, rec Recorder) *View {
	if log == nil {
		log = slog.Default()
	}

	return &View{
		state:   reconcile.New(policy),
		loading: true,
		fetcher: fetcher,
		log:     log,
		rec:     rec,
	}
}

// Mount runs the fetch exactly once. A failed fetch is logged and leaves the
// list empty; loading ends either way. Later calls return immediately.
func (v *View) Mount(ctx context.Context) {
	v.once.Do(func() {
		users, err := v.fetcher.Fetch(ctx)

		v.mu.Lock()
		defer v.mu.Unlock()

		v.loading = false
		v.version++

		if err != nil {
			v.log.ErrorContext(ctx, "fetch users failed", "err", err)
			v.observe("fetch", "error")
			return
		}

		v.state = reconcile.Load(v.state, users)
		v.log.InfoContext(ctx, "users loaded", "count", len(users))
		v.observe("fetch", "ok")
	})
}

func (v *View) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.loading
}

func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.snapshot()
}

func (v *View) User(id int) (user.User, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loading {
		return user.User{}, ErrLoading
	}

	u, ok := reconcile.Find(v.state, id)
	if !ok {
		return user.User{}, ErrUserNotFound
	}
	return u, nil
}

func (v *View) SetField(name, value string) (Snapshot, error) {
	return v.apply("set_field", func(s reconcile.State) (reconcile.State, error) {
		return reconcile.SetField(s, name, value)
	})
}

// Submit creates or updates depending on the mode. created is nil after an update.
func (v *View) Submit() (snap Snapshot, created *user.User, err error) {
	snap, err = v.apply("submit", func(s reconcile.State) (reconcile.State, error) {
		var next reconcile.State
		next, created = reconcile.Submit(s)
		return next, nil
	})

	return snap, created, err
}

func (v *View) Edit(id int) (Snapshot, error) {
	return v.apply("edit", func(s reconcile.State) (reconcile.State, error) {
		u, ok := reconcile.Find(s, id)
		if !ok {
			return s, ErrUserNotFound
		}
		return reconcile.Edit(s, u), nil
	})
}

func (v *View) Delete(id int) (Snapshot, error) {
	return v.apply("delete", func(s reconcile.State) (reconcile.State, error) {
		return reconcile.Delete(s, id), nil
	})
}

func (v *View) Cancel() (Snapshot, error) {
	return v.apply("cancel", func(s reconcile.State) (reconcile.State, error) {
		return reconcile.Cancel(s), nil
	})
}

func (v *View) apply(op string, fn func(reconcile.State) (reconcile.State, error)) (Snapshot, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.loading {
		v.observe(op, "loading")
		return v.snapshot(), ErrLoading
	}

	next, err := fn(v.state)
	if err != nil {
		v.observe(op, errorClass(err))
		return v.snapshot(), err
	}

	v.state = next
	v.version++
	v.observe(op, "ok")

	return v.snapshot(), nil
}

func (v *View) snapshot() Snapshot {
	users := make([]user.User, len(v.state.Users))
	copy(users, v.state.Users)

	var editing *int
	if v.state.EditingID != nil {
		id := *v.state.EditingID
		editing = &id
	}

	return Snapshot{
		Loading:   v.loading,
		Mode:      string(v.state.Mode()),
		EditingID: editing,
		Form:      v.state.Form,
		Users:     users,
		Version:   v.version,
	}
}

func (v *View) observe(op, result string) {
	if v.rec != nil {
		v.rec.ObserveOp(op, result)
	}
}

func errorClass(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "not_found"
	case errors.Is(err, user.ErrUnknownField):
		return "unknown_field"
	case errors.Is(err, reconcile.ErrNotEditing):
		return "not_editing"
	default:
		return "error"
	}
}
