package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"scene-audit/core/storage"

	"github.com/minio/minio-go/v7"
)

// Source abstracts where a project's files come from. Names are
// slash-separated and relative to the project root; List returns them
// sorted so scene enumeration order is stable per run.
type Source interface {
	// List returns the names of all files under prefix ending in ext.
	List(ctx context.Context, prefix, ext string) ([]string, error)
	// Read returns the contents of one file.
	Read(ctx context.Context, name string) ([]byte, error)
}

// DirSource reads a project from a local directory.
type DirSource struct {
	Root string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Root: dir}
}

func (s *DirSource) List(ctx context.Context, prefix, ext string) ([]string, error) {
	base := filepath.Join(s.Root, filepath.FromSlash(prefix))
	var names []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ext) {
			return nil
		}
		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list %s: %w", prefix, err)
	}
	sort.Strings(names)
	return names, nil
}

func (s *DirSource) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}

// BucketSource reads a project from an object storage bucket.
type BucketSource struct {
	Client storage.Client
	Bucket string
}

// NewBucketSource creates a source backed by a storage client.
func NewBucketSource(client storage.Client, bucket string) *BucketSource {
	return &BucketSource{Client: client, Bucket: bucket}
}

func (s *BucketSource) List(ctx context.Context, prefix, ext string) ([]string, error) {
	var names []string
	objects := s.Client.ListObjects(ctx, s.Bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", prefix, object.Err)
		}
		if strings.HasSuffix(object.Key, ext) {
			names = append(names, object.Key)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *BucketSource) Read(ctx context.Context, name string) ([]byte, error) {
	object, err := s.Client.GetObject(ctx, s.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
