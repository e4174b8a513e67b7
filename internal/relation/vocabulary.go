package relation

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/emrgen/wikt/internal/model"
	"github.com/emrgen/wikt/internal/store"
	"github.com/sirupsen/logrus"
)

// Type is a relation kind together with its persisted id.
type Type struct {
	ID   int64
	Kind Kind
}

// snapshot is one build of the vocabulary, the two maps are inverse of each other.
type snapshot struct {
	idToKind map[int64]Kind
	kindToID map[Kind]int64
	drift    bool
}

// Vocabulary maps relation kinds to the ids of the table 'relation_type' and back.
// It is empty until Rebuild succeeds. Rebuild swaps the maps under a lock,
// so lookups may run concurrently with a rebuild.
type Vocabulary struct {
	store store.RelationTypeStore
	mu    sync.RWMutex
	snap  *snapshot
}

// NewVocabulary creates a vocabulary backed by the given store.
func NewVocabulary(store store.RelationTypeStore) *Vocabulary {
	return &Vocabulary{store: store}
}

// Rebuild reads the table 'relation_type' and replaces both maps.
// A row count different from the enumeration size is logged as schema drift
// and the vocabulary keeps the rows that exist. On a store error the
// previous maps stay in place.
func (v *Vocabulary) Rebuild(ctx context.Context) error {
	logrus.Info("loading table relation_type")

	rows, err := v.store.ListRelationTypes(ctx)
	if err != nil {
		return store.Wrap("list relation types", err)
	}

	next := &snapshot{
		idToKind: make(map[int64]Kind, len(rows)),
		kindToID: make(map[Kind]int64, len(rows)),
	}
	for _, row := range rows {
		kind, ok := ParseKind(row.Name)
		if !ok {
			logrus.Warnf("relation_type row %d has unknown name %q, skipped", row.ID, row.Name)
			continue
		}
		if first, dup := next.kindToID[kind]; dup {
			logrus.Warnf("relation_type row %d repeats %q of row %d, skipped", row.ID, row.Name, first)
			next.drift = true
			continue
		}
		next.idToKind[row.ID] = kind
		next.kindToID[kind] = row.ID
	}

	if len(rows) == 0 {
		logrus.Error("the table relation_type is empty")
	}
	if next.drift || len(rows) != Size() || len(next.kindToID) != Size() {
		next.drift = true
		logrus.WithFields(logrus.Fields{
			"rows":  len(rows),
			"known": len(next.kindToID),
			"kinds": Size(),
		}).Warn("relation_type does not match the relation kinds, is the database outdated?")
	}

	v.mu.Lock()
	v.snap = next
	v.mu.Unlock()

	return nil
}

func (v *Vocabulary) current() *snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.snap
}

// Initialized reports whether Rebuild has succeeded at least once.
func (v *Vocabulary) Initialized() bool {
	return v.current() != nil
}

// Drift reports whether the last rebuild saw a table not matching the enumeration.
func (v *Vocabulary) Drift() bool {
	snap := v.current()
	return snap != nil && snap.drift
}

// Len returns the number of kinds resolved by the last rebuild.
func (v *Vocabulary) Len() int {
	snap := v.current()
	if snap == nil {
		return 0
	}
	return len(snap.kindToID)
}

// IDOf returns the persisted id of a relation kind.
func (v *Vocabulary) IDOf(kind Kind) (int64, error) {
	snap := v.current()
	if snap == nil {
		return 0, ErrNotInitialized
	}

	id, ok := snap.kindToID[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrKindNotFound, kind)
	}
	return id, nil
}

// KindOf returns the relation kind stored under id.
func (v *Vocabulary) KindOf(id int64) (Kind, bool) {
	snap := v.current()
	if snap == nil {
		return "", false
	}

	kind, ok := snap.idToKind[id]
	return kind, ok
}

// Get returns the relation kind with its id.
func (v *Vocabulary) Get(kind Kind) (Type, error) {
	id, err := v.IDOf(kind)
	if err != nil {
		return Type{}, err
	}
	return Type{ID: id, Kind: kind}, nil
}

// Types returns all resolved relation types ordered by id.
func (v *Vocabulary) Types() []Type {
	snap := v.current()
	if snap == nil {
		return nil
	}

	types := make([]Type, 0, len(snap.idToKind))
	for _, kind := range AllKinds() {
		if id, ok := snap.kindToID[kind]; ok {
			types = append(types, Type{ID: id, Kind: kind})
		}
	}
	sort.Slice(types, func(i, j int) bool { return types[i].ID < types[j].ID })
	return types
}

// Reconcile recreates the table 'relation_type' from the enumeration: all rows
// are deleted, the id sequence restarts and the kinds are inserted sorted by
// name, so every run assigns the same ids. A table that does not hold exactly
// one row per kind afterwards fails with ErrReconciliation and the transaction
// is rolled back. On success the vocabulary is rebuilt.
//
// Reconcile must not run while other readers use the table.
func (v *Vocabulary) Reconcile(ctx context.Context) error {
	logrus.Info("recreating the table relation_type")

	err := v.store.Transaction(ctx, func(tx store.Store) error {
		deleted, err := tx.DeleteRelationTypes(ctx)
		if err != nil {
			return store.Wrap("delete relation types", err)
		}
		logrus.Debugf("deleted %d relation types", deleted)

		for _, kind := range AllKinds() {
			row := &model.RelationType{Name: kind.String()}
			if err := tx.CreateRelationType(ctx, row); err != nil {
				return store.Wrap("insert relation type "+kind.String(), err)
			}
		}

		count, err := tx.Count(ctx, model.RelationType{}.TableName())
		if err != nil {
			return store.Wrap("count relation types", err)
		}
		if count != int64(Size()) {
			return fmt.Errorf("%w: table has %d rows, want %d", ErrReconciliation, count, Size())
		}

		return nil
	})
	if err != nil {
		return err
	}

	return v.Rebuild(ctx)
}
