package processor

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/image-processor-mcp/internal/imaging"
)

// Registry maps image names to images.
//
// Names are unique; storing under an existing name replaces the previous
// image. Entries are never removed individually; Reset drops them all.
//
// Individual methods are safe for concurrent use, but a lookup followed by
// a store is not atomic. Callers that run multi-step sequences from several
// goroutines must serialize them.
type Registry struct {
	mu     sync.RWMutex
	images map[string]*imaging.Image
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		images: make(map[string]*imaging.Image),
	}
}

// Get returns the image stored under name.
//
// Returns an error wrapping imaging.ErrNotFound if no such image exists.
func (r *Registry) Get(name string) (*imaging.Image, error) {
	r.mu.RLock()
	img, ok := r.images[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: image %q", imaging.ErrNotFound, name)
	}
	return img, nil
}

// Put stores a copy of img under name, replacing any previous entry.
// No two entries share pixel storage, even when the same image is stored
// under several names.
func (r *Registry) Put(name string, img *imaging.Image) error {
	if name == "" {
		return fmt.Errorf("%w: image name is empty", imaging.ErrInvalidArgument)
	}
	if img == nil {
		return fmt.Errorf("%w: image %q is nil", imaging.ErrInvalidArgument, name)
	}
	stored := img.Clone()
	r.mu.Lock()
	r.images[name] = stored
	r.mu.Unlock()
	return nil
}

// Names returns the stored names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.images))
	for name := range r.images {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

// Len returns the number of stored images.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.images)
}

// Reset removes every image.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.images = make(map[string]*imaging.Image)
	r.mu.Unlock()
}
