package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/orbit/engine/assets/loaders"
	"github.com/spaghettifunk/orbit/engine/core"
	"github.com/spaghettifunk/orbit/engine/renderer/metadata"
)

type AssetInfo struct {
	Path       string
	Type       metadata.ResourceType
	LastLoaded time.Time
}

type imageKey struct {
	path  string
	flipY bool
}

// AssetManager indexes the files under the asset root, loads them through
// per type loaders and caches decoded images. When watching is enabled an
// fsnotify watcher keeps the index current and evicts cached images whose
// file was written or removed.
type AssetManager struct {
	root    string
	assets  map[string]AssetInfo
	images  map[imageKey]*metadata.ImageResourceData
	loaders map[metadata.ResourceType]Loader

	mutex sync.RWMutex

	done     chan struct{}
	stopped  chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewAssetManager() *AssetManager {
	am := &AssetManager{
		assets:  make(map[string]AssetInfo),
		images:  make(map[imageKey]*metadata.ImageResourceData),
		loaders: make(map[metadata.ResourceType]Loader),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}

	// Register loaders
	am.registerLoader(metadata.ResourceTypeText, &loaders.TextLoader{})
	am.registerLoader(metadata.ResourceTypeShader, &loaders.ShaderLoader{})
	am.registerLoader(metadata.ResourceTypeImage, &loaders.ImageLoader{})
	return am
}

// Initialize indexes assetsDir and, if watch is set, starts watching it.
func (am *AssetManager) Initialize(assetsDir string, watch bool) error {
	root, err := filepath.Abs(assetsDir)
	if err != nil {
		return err
	}
	am.root = root

	if watch {
		fsWatch, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		am.fsnotify = fsWatch
	}

	if err := am.addRecursive(root); err != nil {
		if am.fsnotify != nil {
			am.fsnotify.Close()
			am.fsnotify = nil
		}
		return err
	}
	if am.fsnotify != nil {
		go am.start()
	}
	core.LogDebug("asset manager indexed %d files under %s (watching: %t)", am.Count(), root, watch)
	return nil
}

// Close stops the watcher and drops every cached image.
func (am *AssetManager) Close() error {
	am.mutex.Lock()
	if am.isClosed {
		am.mutex.Unlock()
		return nil
	}
	am.isClosed = true
	am.images = make(map[imageKey]*metadata.ImageResourceData)
	am.mutex.Unlock()

	close(am.done)
	if am.fsnotify != nil {
		<-am.stopped
	}
	return nil
}

// AddRecursive indexes the named directory and all sub-directories.
func (am *AssetManager) addRecursive(name string) error {
	am.mutex.RLock()
	closed := am.isClosed
	am.mutex.RUnlock()
	if closed {
		return errors.New("asset manager already closed")
	}
	return am.watchRecursive(name, false)
}

// Register loaders for each asset type
func (am *AssetManager) registerLoader(assetType metadata.ResourceType, loader Loader) {
	am.loaders[assetType] = loader
}

// LoadAsset loads a file with the loader registered for resourceType.
// Images go through the cache.
func (am *AssetManager) LoadAsset(path string, resourceType metadata.ResourceType, params interface{}) (*metadata.Resource, error) {
	if resourceType == metadata.ResourceTypeImage {
		var p metadata.ImageResourceParams
		if typedParams, ok := params.(*metadata.ImageResourceParams); ok && typedParams != nil {
			p = *typedParams
		}
		img, err := am.LoadImage(path, p)
		if err != nil {
			return nil, err
		}
		return &metadata.Resource{
			Type:     metadata.ResourceTypeImage,
			Name:     path,
			FullPath: path,
			DataSize: uint64(len(img.Pixels)),
			Data:     img,
		}, nil
	}

	loader, loaderExists := am.loaders[resourceType]
	if !loaderExists {
		return nil, fmt.Errorf("no loader registered for asset type: %s", resourceType)
	}
	res, err := loader.Load(path, params)
	if err != nil {
		return nil, err
	}
	am.touch(path, resourceType)
	return res, nil
}

func (am *AssetManager) UnloadAsset(asset *metadata.Resource) error {
	loader, loaderExists := am.loaders[asset.Type]
	if !loaderExists {
		return fmt.Errorf("no loader registered for asset type: %s", asset.Type)
	}
	return loader.Unload(asset)
}

// LoadShader reads both stages of a shader program.
func (am *AssetManager) LoadShader(vertexPath, fragmentPath string) (string, string, error) {
	vsrc, fsrc, err := loaders.LoadShader(vertexPath, fragmentPath)
	if err != nil {
		return "", "", err
	}
	am.touch(vertexPath, metadata.ResourceTypeShader)
	am.touch(fragmentPath, metadata.ResourceTypeShader)
	return vsrc, fsrc, nil
}

// LoadImage returns the decoded image at path, from the cache when it has
// already been decoded with the same parameters. Cached pixels are shared
// and must not be modified.
func (am *AssetManager) LoadImage(path string, params metadata.ImageResourceParams) (*metadata.ImageResourceData, error) {
	key := imageKey{path: am.key(path), flipY: params.FlipY}

	am.mutex.RLock()
	img, cached := am.images[key]
	am.mutex.RUnlock()
	if cached {
		core.LogDebug("image cache hit: %s", path)
		return img, nil
	}

	img, err := loaders.LoadImageWithParams(path, params)
	if err != nil {
		return nil, err
	}

	am.mutex.Lock()
	if !am.isClosed {
		am.images[key] = img
	}
	am.mutex.Unlock()
	am.touch(path, metadata.ResourceTypeImage)
	return img, nil
}

// Cached reports whether the image at path is in the cache, flipped or not.
func (am *AssetManager) Cached(path string) bool {
	k := am.key(path)
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	_, a := am.images[imageKey{path: k}]
	_, b := am.images[imageKey{path: k, flipY: true}]
	return a || b
}

// Evict drops the cached images decoded from path.
func (am *AssetManager) Evict(path string) {
	k := am.key(path)
	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.evict(k)
}

func (am *AssetManager) evict(key string) {
	for _, flip := range []bool{false, true} {
		if _, ok := am.images[imageKey{path: key, flipY: flip}]; ok {
			delete(am.images, imageKey{path: key, flipY: flip})
			core.LogDebug("image cache evicted: %s", key)
		}
	}
}

// Lookup returns the index entry of a file under the asset root.
func (am *AssetManager) Lookup(path string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[am.key(path)]
	return info, ok
}

// Count is the number of indexed asset files.
func (am *AssetManager) Count() int {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	return len(am.assets)
}

func (am *AssetManager) start() {
	defer close(am.stopped)
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return
			}
			am.handleEvent(e)

		case e, ok := <-am.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(e.Error())

		case <-am.done:
			am.fsnotify.Close()
			return
		}
	}
}

func (am *AssetManager) handleEvent(e fsnotify.Event) {
	s, err := os.Stat(e.Name)
	if err == nil && s != nil && s.IsDir() {
		if e.Has(fsnotify.Create) {
			am.watchRecursive(e.Name, false)
		}
		return
	}
	// Handle create or modify events
	if e.Has(fsnotify.Create) || e.Has(fsnotify.Write) {
		am.handleFileEvent(e.Name)
	}
	if e.Has(fsnotify.Write) {
		am.Evict(e.Name)
	}
	// Can't stat a deleted file, so treat it as either and drop it from the
	// index, the cache and the watch list.
	if e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename) {
		am.removeAsset(e.Name)
		if am.fsnotify != nil {
			am.fsnotify.Remove(e.Name)
		}
	}
}

// watchRecursive indexes every file under path and, with a watcher, adds
// (or removes) a watch on every directory.
func (am *AssetManager) watchRecursive(path string, unWatch bool) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			if am.fsnotify == nil {
				return nil
			}
			if unWatch {
				return am.fsnotify.Remove(walkPath)
			}
			return am.fsnotify.Add(walkPath)
		}
		am.handleFileEvent(walkPath)
		return nil
	})
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) {
	assetType := determineAssetType(path)
	if assetType == metadata.ResourceTypeNone {
		return
	}
	k := am.key(path)

	am.mutex.Lock()
	defer am.mutex.Unlock()
	am.assets[k] = AssetInfo{
		Path: k,
		Type: assetType,
	}
}

func (am *AssetManager) touch(path string, assetType metadata.ResourceType) {
	k := am.key(path)

	am.mutex.Lock()
	defer am.mutex.Unlock()
	info, ok := am.assets[k]
	if !ok {
		info = AssetInfo{Path: k, Type: assetType}
	}
	info.LastLoaded = time.Now()
	am.assets[k] = info
}

// Remove the asset from the index and the cache if it was deleted
func (am *AssetManager) removeAsset(path string) {
	k := am.key(path)

	am.mutex.Lock()
	defer am.mutex.Unlock()
	delete(am.assets, k)
	am.evict(k)
}

// key normalizes a path so that relative and absolute spellings of the
// same file share index and cache entries.
func (am *AssetManager) key(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func determineAssetType(path string) metadata.ResourceType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glsl", ".vert", ".frag":
		return metadata.ResourceTypeShader
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return metadata.ResourceTypeImage
	case ".txt", ".toml":
		return metadata.ResourceTypeText
	default:
		return metadata.ResourceTypeNone
	}
}
