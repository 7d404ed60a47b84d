// Package badgr is an adapter for the badgerDB
package badgr

import (
	"time"

	"github.com/dgraph-io/badger"
)

// definitionTTL keeps cached definitions from living forever; the
// upstream dictionary rarely changes, so a month is plenty.
const definitionTTL = 30 * 24 * time.Hour

var keyPrefix = []byte("def:")

// DefinitionRepo memoizes remote dictionary definitions so restarts and
// repeated picks of the same word skip the network. It satisfies
// word.Definitions.
type DefinitionRepo struct {
	db *badger.DB
}

func New(db *badger.DB) *DefinitionRepo {
	return &DefinitionRepo{db: db}
}

// GetDefinition implements word.Definitions. Any read failure is a miss.
func (r *DefinitionRepo) GetDefinition(word string) (string, bool) {
	var out []byte
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(word))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return "", false
	}
	return string(out), true
}

// PutDefinition implements word.Definitions.
func (r *DefinitionRepo) PutDefinition(word, definition string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry(key(word), []byte(definition)).WithTTL(definitionTTL)
		return txn.SetEntry(e)
	})
}

func key(word string) []byte {
	return append(append([]byte{}, keyPrefix...), word...)
}
