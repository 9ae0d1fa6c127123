package store

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/peterbourgon/diskv/v3"
)

// NewDiskv stores each key as one file under basePath.
func NewDiskv(basePath string) Backend {
	return &diskvBackend{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}
}

type diskvBackend struct {
	d *diskv.Diskv
}

func (b *diskvBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	if !b.d.Has(key) {
		return nil, false, nil
	}
	val, err := b.d.Read(key)
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (b *diskvBackend) Set(_ context.Context, key string, raw []byte) error {
	return b.d.Write(key, raw)
}

func (b *diskvBackend) Remove(_ context.Context, key string) error {
	if !b.d.Has(key) {
		return nil
	}
	return b.d.Erase(key)
}

func (b *diskvBackend) Close() error {
	return nil
}

// Keys are encoded so any string maps to a single safe file name.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: base64.RawURLEncoding.EncodeToString([]byte(s)),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	key, err := base64.RawURLEncoding.DecodeString(pathKey.FileName)
	if err != nil {
		return fmt.Sprintf("pathToKey: %s", err)
	}
	return string(key)
}
