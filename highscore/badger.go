package highscore

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"

	"sidescroller/logging"
)

var highScoreKey = []byte("highscore")

// Badger keeps the high score in an embedded BadgerDB
type Badger struct {
	db  *badger.DB
	log *logging.Logger
}

// OpenBadger opens (or creates) the database in dir. An empty dir opens an
// in-memory database.
func OpenBadger(dir string, log *logging.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger high score store: %w", err)
	}
	return &Badger{db: db, log: log}, nil
}

func (b *Badger) Get() (int, bool) {
	var score int
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(highScoreKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("high score value has %d bytes", len(val))
			}
			score = int(binary.BigEndian.Uint64(val))
			return nil
		})
	})
	if err != nil {
		if !errors.Is(err, badger.ErrKeyNotFound) {
			b.log.Warnf("read high score: %v", err)
		}
		return 0, false
	}
	if score < 0 {
		return 0, false
	}
	return score, true
}

func (b *Badger) Set(score int) error {
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, uint64(score))
	if err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(highScoreKey, val)
	}); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

func (b *Badger) Close() error {
	return b.db.Close()
}
