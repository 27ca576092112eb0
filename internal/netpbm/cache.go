package netpbm

import (
	"fmt"
	"os"
	"sync"

	"github.com/ironsheep/lutimage-mcp/internal/imaging"
)

type cacheEntry struct {
	img    *imaging.Image
	format Format
}

// Cache provides thread-safe caching of decoded images to avoid redundant
// disk reads.
//
// The cache stores decoded images keyed by their file path. Images returned
// by Load are shared with the cache: callers that want to modify one must
// work on a Copy.
//
// # Example Usage
//
//	cache := netpbm.NewCache()
//	img, err := cache.Load("/path/to/image.pbm")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	work := img.Copy()
//	// Modify work...
//	cache.Evict("/path/to/image.pbm") // Optional: free memory
type Cache struct {
	mu     sync.RWMutex
	images map[string]cacheEntry
}

// NewCache creates and initializes a new empty image cache.
func NewCache() *Cache {
	return &Cache{
		images: make(map[string]cacheEntry),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not
// cached. The image is cached under the exact path string provided.
func (c *Cache) Load(path string) (*imaging.Image, error) {
	img, _, err := c.load(path)
	return img, err
}

func (c *Cache) load(path string) (*imaging.Image, Format, error) {
	c.mu.RLock()
	if e, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return e.img, e.format, nil
	}
	c.mu.RUnlock()

	img, format, err := Load(path)
	if err != nil {
		return nil, "", err
	}

	c.mu.Lock()
	c.images[path] = cacheEntry{img: img, format: format}
	c.mu.Unlock()

	return img, format, nil
}

// Clear removes all images from the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cacheEntry)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Colors is the number of LUT entries.
	Colors int `json:"colors"`

	// Format is the detected format: "pbm" or "ppm". Detection is based on
	// the magic number, not the file extension.
	Format Format `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and describes it.
func LoadImageInfo(cache *Cache, path string) (*ImageInfo, error) {
	img, format, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &ImageInfo{
		Width:         img.Width(),
		Height:        img.Height(),
		Colors:        img.NumColors(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
