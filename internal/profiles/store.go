// Copyright IBM Corp. 2020, 2025
// SPDX-License-Identifier: BUSL-1.1

// Package profiles provides the persisted, multi-profile store of server
// URLs, credentials and cached capability descriptions. A Store is a
// transaction over the whole store: it holds an exclusive lock from Open
// until Close and commits every mutation on Close.
package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/alburnum/maas/internal/errors"
	"github.com/glebarez/sqlite"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/go-uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultFileName is the name of the store file in the user's home
// directory.
const DefaultFileName = ".maascli.db"

// sqliteHeader is the magic string every SQLite 3 database starts with.
var sqliteHeader = []byte("SQLite format 3\x00")

// profileRow is the persisted form of one profile.
type profileRow struct {
	Name string `gorm:"primaryKey"`
	Data string `gorm:"not null"`
}

// TableName overrides the table name used by profileRow to `profiles`
func (profileRow) TableName() string {
	return "profiles"
}

// DefaultPath returns the store location in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultFileName), nil
}

// ResolvePath returns path, or DefaultPath when path is empty. The home
// directory is only looked up here so that commands which never touch the
// store work without one.
func ResolvePath(ctx context.Context, path string) (string, error) {
	const op = "profiles.ResolvePath"
	if path != "" {
		return path, nil
	}
	p, err := DefaultPath()
	if err != nil {
		return "", errors.Wrap(ctx, err, op, errors.WithCode(errors.Io), errors.WithMsg("unable to locate the profile store"))
	}
	return p, nil
}

// Store is an open handle on the profile store.
type Store struct {
	path     string
	logger   hclog.Logger
	lock     storeLock
	profiles map[string]*Profile
	existed  bool
	dirty    bool
	closed   bool
}

// Open acquires the store's exclusive lock, waiting for other processes to
// release it, and loads every profile. A missing store is an empty store.
func Open(ctx context.Context, path string, opt ...Option) (*Store, error) {
	const op = "profiles.Open"
	if path == "" {
		return nil, errors.New(ctx, errors.InvalidParameter, op, "missing store path")
	}
	opts := getOpts(opt...)
	l, err := acquireLock(ctx, path, opts)
	if err != nil {
		return nil, errors.Wrap(ctx, err, op)
	}
	s := &Store{
		path:   path,
		logger: opts.withLogger,
		lock:   l,
	}
	if err := s.load(ctx); err != nil {
		if relErr := l.release(); relErr != nil {
			s.logger.Error("unable to release profile store lock", "path", path, "error", relErr)
		}
		return nil, errors.Wrap(ctx, err, op)
	}
	s.logger.Debug("opened profile store", "path", path, "profiles", len(s.profiles))
	return s, nil
}

// With opens the store at path, calls fn and closes the store exactly once,
// whether fn returns normally, returns an error or panics. Mutations made by
// fn are committed in every case.
func With(ctx context.Context, path string, fn func(*Store) error, opt ...Option) (retErr error) {
	const op = "profiles.With"
	s, err := Open(ctx, path, opt...)
	if err != nil {
		return err
	}
	defer func() {
		closeErr := s.Close(ctx)
		switch {
		case closeErr == nil:
		case retErr == nil:
			retErr = closeErr
		default:
			s.logger.Error("unable to close profile store", "path", path, "error", closeErr)
		}
	}()
	if err := fn(s); err != nil {
		return errors.Wrap(ctx, err, op)
	}
	return nil
}

// Path returns the location of the store file.
func (s *Store) Path() string {
	return s.path
}

// Names returns the names of every profile, sorted.
func (s *Store) Names() []string {
	if s.closed {
		return nil
	}
	return s.names()
}

// Get returns a copy of the named profile.
func (s *Store) Get(ctx context.Context, name string) (*Profile, error) {
	const op = "profiles.(Store).Get"
	if s.closed {
		return nil, errors.E(ctx, errors.WithCode(errors.StoreClosed), errors.WithOp(op))
	}
	p, ok := s.profiles[name]
	if !ok {
		return nil, errors.New(ctx, errors.RecordNotFound, op, fmt.Sprintf("profile %q not found", name))
	}
	return p.Clone(), nil
}

// Put creates or replaces the profile with p's name.
func (s *Store) Put(ctx context.Context, p *Profile) error {
	const op = "profiles.(Store).Put"
	if s.closed {
		return errors.E(ctx, errors.WithCode(errors.StoreClosed), errors.WithOp(op))
	}
	if err := p.Validate(ctx); err != nil {
		return errors.Wrap(ctx, err, op)
	}
	cp := p.Clone()
	if err := cp.normalize(); err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.InvalidParameter))
	}
	s.profiles[cp.Name] = cp
	s.dirty = true
	return nil
}

// Delete removes the named profile.
func (s *Store) Delete(ctx context.Context, name string) error {
	const op = "profiles.(Store).Delete"
	if s.closed {
		return errors.E(ctx, errors.WithCode(errors.StoreClosed), errors.WithOp(op))
	}
	if _, ok := s.profiles[name]; !ok {
		return errors.New(ctx, errors.RecordNotFound, op, fmt.Sprintf("profile %q not found", name))
	}
	delete(s.profiles, name)
	s.dirty = true
	return nil
}

// Close commits the store when it was modified or did not yet exist, then
// releases the lock. Close is safe to call more than once; only the first
// call has any effect.
func (s *Store) Close(ctx context.Context) error {
	const op = "profiles.(Store).Close"
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	result := &multierror.Error{ErrorFormat: errors.SingleLineFormat}
	if s.dirty || !s.existed {
		if err := s.commit(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := s.lock.release(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.Io))
	}
	return nil
}

func openDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Discard,
	})
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) load(ctx context.Context) error {
	const op = "profiles.(Store).load"
	s.profiles = map[string]*Profile{}

	f, err := os.Open(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.Io))
	}
	header := make([]byte, len(sqliteHeader))
	_, err = io.ReadFull(f, header)
	_ = f.Close()
	switch {
	case err == io.EOF:
		// An empty file holds no profiles and is rewritten on close.
		return nil
	case err == io.ErrUnexpectedEOF, err == nil && !bytes.Equal(header, sqliteHeader):
		return errors.New(ctx, errors.StoreCorrupt, op, fmt.Sprintf("%s is not a profile database", s.path))
	case err != nil:
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.Io))
	}
	s.existed = true

	db, err := openDB(s.path)
	if err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.StoreCorrupt), errors.WithMsg(fmt.Sprintf("unable to open %s", s.path)))
	}
	defer func() {
		if err := closeDB(db); err != nil {
			s.logger.Warn("unable to close profile database", "path", s.path, "error", err)
		}
	}()
	if !db.Migrator().HasTable(&profileRow{}) {
		return errors.New(ctx, errors.StoreCorrupt, op, fmt.Sprintf("%s has no profiles table", s.path))
	}
	var rows []profileRow
	if err := db.Find(&rows).Error; err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.StoreCorrupt), errors.WithMsg(fmt.Sprintf("unable to read profiles from %s", s.path)))
	}
	for _, r := range rows {
		var p Profile
		if err := json.Unmarshal([]byte(r.Data), &p); err != nil {
			return errors.Wrap(ctx, err, op, errors.WithCode(errors.StoreCorrupt), errors.WithMsg(fmt.Sprintf("unable to decode profile %q", r.Name)))
		}
		p.Name = r.Name
		if err := p.normalize(); err != nil {
			return errors.Wrap(ctx, err, op, errors.WithCode(errors.StoreCorrupt), errors.WithMsg(fmt.Sprintf("unable to decode profile %q", r.Name)))
		}
		s.profiles[r.Name] = &p
	}
	return nil
}

// commit writes the full mapping to a sibling file and renames it over the
// store so readers never observe a partial write.
func (s *Store) commit(ctx context.Context) (retErr error) {
	const op = "profiles.(Store).commit"
	rows := make([]profileRow, 0, len(s.profiles))
	for _, name := range s.names() {
		data, err := json.Marshal(s.profiles[name])
		if err != nil {
			return errors.Wrap(ctx, err, op, errors.WithCode(errors.Internal), errors.WithMsg(fmt.Sprintf("unable to encode profile %q", name)))
		}
		rows = append(rows, profileRow{Name: name, Data: string(data)})
	}

	id, err := uuid.GenerateUUID()
	if err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.Internal))
	}
	tmp := filepath.Join(filepath.Dir(s.path), fmt.Sprintf(".%s.tmp-%s", filepath.Base(s.path), id))
	defer func() {
		if retErr != nil {
			_ = os.Remove(tmp)
			_ = os.Remove(tmp + "-journal")
		}
	}()

	db, err := openDB(tmp)
	if err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.Io))
	}
	err = db.AutoMigrate(&profileRow{})
	if err == nil {
		err = db.Transaction(func(tx *gorm.DB) error {
			if len(rows) == 0 {
				return nil
			}
			return tx.Create(&rows).Error
		})
	}
	if closeErr := closeDB(db); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.Io), errors.WithMsg("unable to write profile database"))
	}
	if err := os.Chmod(tmp, 0o600); err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.Io))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(ctx, err, op, errors.WithCode(errors.Io), errors.WithMsg(fmt.Sprintf("unable to replace %s", s.path)))
	}
	s.logger.Debug("committed profile store", "path", s.path, "profiles", len(rows))
	return nil
}

func (s *Store) names() []string {
	names := make([]string, 0, len(s.profiles))
	for n := range s.profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
