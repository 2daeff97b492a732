// Package boltstore implements carteira.Store in a single bbolt file: one
// bucket per record kind, keyed by CPF or code, msgpack encoded values.
package boltstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/carteira"
	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"
)

var (
	accountsBucket = []byte("accounts")
	walletsBucket  = []byte("wallets")
	ordersBucket   = []byte("orders")
)

// Store is a carteira.Store backed by bbolt.
type Store struct {
	db  *bolt.DB
	log zerolog.Logger
}

var _ carteira.Store = (*Store)(nil)

// Open opens (or creates) the database file at path.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir database path: %w", err)
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{accountsBucket, walletsBucket, ordersBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}
	return &Store{db: db, log: log.With().Str("repo", "bolt").Logger()}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// get decodes the record at key into rec. It returns ErrNotFound if absent.
func get(tx *bolt.Tx, bucket []byte, key string, rec any) error {
	data := tx.Bucket(bucket).Get([]byte(key))
	if data == nil {
		return carteira.ErrNotFound
	}
	return msgpack.Unmarshal(data, rec)
}

// insert stores rec at key. It returns ErrDuplicate if the key is taken.
func insert(tx *bolt.Tx, bucket []byte, key string, rec any) error {
	b := tx.Bucket(bucket)
	if b.Get([]byte(key)) != nil {
		return carteira.ErrDuplicate
	}
	return put(b, key, rec)
}

// replace stores rec at key. It returns ErrNotFound if the key is absent.
func replace(tx *bolt.Tx, bucket []byte, key string, rec any) error {
	b := tx.Bucket(bucket)
	if b.Get([]byte(key)) == nil {
		return carteira.ErrNotFound
	}
	return put(b, key, rec)
}

func put(b *bolt.Bucket, key string, rec any) error {
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return err
	}
	return b.Put([]byte(key), data)
}

// remove deletes key. It returns ErrNotFound if the key is absent.
func remove(tx *bolt.Tx, bucket []byte, key string) error {
	b := tx.Bucket(bucket)
	if b.Get([]byte(key)) == nil {
		return carteira.ErrNotFound
	}
	return b.Delete([]byte(key))
}

// scan decodes every record of bucket, in key order, and calls fn with it.
func scan[R any](tx *bolt.Tx, bucket []byte, fn func(R) error) error {
	c := tx.Bucket(bucket).Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		var rec R
		if err := msgpack.Unmarshal(v, &rec); err != nil {
			return fmt.Errorf("corrupt record %q: %w", k, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

// wrap qualifies err with the record kind and key, keeping sentinels
// reachable with errors.Is.
func wrap(kind, key string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, carteira.ErrNotFound) || errors.Is(err, carteira.ErrDuplicate) {
		return fmt.Errorf("%s %s: %w", kind, key, err)
	}
	return fmt.Errorf("%s %s: storage error: %w", kind, key, err)
}

// --- accounts ---

type accountRecord struct {
	CPF          string `msgpack:"cpf"`
	Name         string `msgpack:"name"`
	PasswordHash []byte `msgpack:"password_hash"`
}

func (r accountRecord) account() (carteira.Account, error) {
	var a carteira.Account
	if err := errors.Join(a.CPF.Set(r.CPF), a.Name.Set(r.Name)); err != nil {
		return carteira.Account{}, fmt.Errorf("corrupt account record: %w", err)
	}
	a.PasswordHash = r.PasswordHash
	return a, nil
}

func newAccountRecord(a carteira.Account) accountRecord {
	return accountRecord{CPF: a.CPF.String(), Name: a.Name.String(), PasswordHash: a.PasswordHash}
}

func (s *Store) FindAccount(_ context.Context, cpf carteira.CPF) (a carteira.Account, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		var rec accountRecord
		if err := get(tx, accountsBucket, cpf.String(), &rec); err != nil {
			return err
		}
		a, err = rec.account()
		return err
	})
	return a, wrap("account", cpf.String(), err)
}

func (s *Store) InsertAccount(_ context.Context, a carteira.Account) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return insert(tx, accountsBucket, a.CPF.String(), newAccountRecord(a))
	})
	return wrap("account", a.CPF.String(), err)
}

func (s *Store) UpdateAccount(_ context.Context, a carteira.Account) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return replace(tx, accountsBucket, a.CPF.String(), newAccountRecord(a))
	})
	return wrap("account", a.CPF.String(), err)
}

func (s *Store) DeleteAccount(_ context.Context, cpf carteira.CPF) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return remove(tx, accountsBucket, cpf.String())
	})
	return wrap("account", cpf.String(), err)
}

// --- wallets ---

type walletRecord struct {
	Code    string `msgpack:"code"`
	Name    string `msgpack:"name"`
	Profile string `msgpack:"profile"`
	Owner   string `msgpack:"owner"`
}

func (r walletRecord) wallet() (carteira.Wallet, error) {
	var w carteira.Wallet
	if err := errors.Join(w.Code.Set(r.Code), w.Name.Set(r.Name), w.Profile.Set(r.Profile), w.Owner.Set(r.Owner)); err != nil {
		return carteira.Wallet{}, fmt.Errorf("corrupt wallet record: %w", err)
	}
	return w, nil
}

func newWalletRecord(w carteira.Wallet) walletRecord {
	return walletRecord{Code: w.Code.String(), Name: w.Name.String(), Profile: w.Profile.String(), Owner: w.Owner.String()}
}

func (s *Store) FindWallet(_ context.Context, code carteira.Code) (w carteira.Wallet, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		var rec walletRecord
		if err := get(tx, walletsBucket, code.String(), &rec); err != nil {
			return err
		}
		w, err = rec.wallet()
		return err
	})
	return w, wrap("wallet", code.String(), err)
}

func (s *Store) ListWallets(_ context.Context, owner carteira.CPF) ([]carteira.Wallet, error) {
	var wallets []carteira.Wallet
	err := s.db.View(func(tx *bolt.Tx) error {
		return scan(tx, walletsBucket, func(rec walletRecord) error {
			if rec.Owner != owner.String() {
				return nil
			}
			w, err := rec.wallet()
			if err != nil {
				return err
			}
			wallets = append(wallets, w)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list wallets of %s: %w", owner, err)
	}
	return wallets, nil
}

func (s *Store) InsertWallet(_ context.Context, w carteira.Wallet) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return insert(tx, walletsBucket, w.Code.String(), newWalletRecord(w))
	})
	return wrap("wallet", w.Code.String(), err)
}

func (s *Store) UpdateWallet(_ context.Context, w carteira.Wallet) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return replace(tx, walletsBucket, w.Code.String(), newWalletRecord(w))
	})
	return wrap("wallet", w.Code.String(), err)
}

func (s *Store) DeleteWallet(_ context.Context, code carteira.Code) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return remove(tx, walletsBucket, code.String())
	})
	return wrap("wallet", code.String(), err)
}

// errStop ends a scan early.
var errStop = errors.New("stop")

func (s *Store) WalletHasOrders(_ context.Context, code carteira.Code) (bool, error) {
	found := false
	err := s.db.View(func(tx *bolt.Tx) error {
		return scan(tx, ordersBucket, func(rec orderRecord) error {
			if rec.Wallet == code.String() {
				found = true
				return errStop
			}
			return nil
		})
	})
	if err != nil && !errors.Is(err, errStop) {
		return false, fmt.Errorf("count orders of wallet %s: %w", code, err)
	}
	return found, nil
}

// --- orders ---

type orderRecord struct {
	Code     string `msgpack:"code"`
	Ticker   string `msgpack:"ticker"`
	Date     string `msgpack:"date"`
	Value    string `msgpack:"value"`
	Quantity string `msgpack:"quantity"`
	Wallet   string `msgpack:"wallet"`
}

func (r orderRecord) order() (carteira.Order, error) {
	var o carteira.Order
	if err := errors.Join(
		o.Code.Set(r.Code),
		o.Ticker.Set(r.Ticker),
		o.Date.Set(r.Date),
		o.Value.Set(r.Value),
		o.Quantity.Set(r.Quantity),
		o.Wallet.Set(r.Wallet),
	); err != nil {
		return carteira.Order{}, fmt.Errorf("corrupt order record: %w", err)
	}
	return o, nil
}

func newOrderRecord(o carteira.Order) orderRecord {
	return orderRecord{
		Code:     o.Code.String(),
		Ticker:   o.Ticker.String(),
		Date:     o.Date.String(),
		Value:    o.Value.String(),
		Quantity: o.Quantity.String(),
		Wallet:   o.Wallet.String(),
	}
}

func (s *Store) FindOrder(_ context.Context, code carteira.Code) (o carteira.Order, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		var rec orderRecord
		if err := get(tx, ordersBucket, code.String(), &rec); err != nil {
			return err
		}
		o, err = rec.order()
		return err
	})
	return o, wrap("order", code.String(), err)
}

func (s *Store) ListOrders(_ context.Context, wallet carteira.Code) ([]carteira.Order, error) {
	var orders []carteira.Order
	err := s.db.View(func(tx *bolt.Tx) error {
		return scan(tx, ordersBucket, func(rec orderRecord) error {
			if rec.Wallet != wallet.String() {
				return nil
			}
			o, err := rec.order()
			if err != nil {
				return err
			}
			orders = append(orders, o)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list orders of wallet %s: %w", wallet, err)
	}
	return orders, nil
}

func (s *Store) InsertOrder(_ context.Context, o carteira.Order) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return insert(tx, ordersBucket, o.Code.String(), newOrderRecord(o))
	})
	if err == nil {
		s.log.Debug().Str("order", o.Code.String()).Msg("order inserted")
	}
	return wrap("order", o.Code.String(), err)
}

func (s *Store) DeleteOrder(_ context.Context, code carteira.Code) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return remove(tx, ordersBucket, code.String())
	})
	return wrap("order", code.String(), err)
}
