package ldtk

import "go.uber.org/zap"

// Cameras is a registry of named cameras sharing one Batch. At most one of
// them is active at a time.
type Cameras struct {
	cameras map[string]*Camera
	active  *Camera
	batch   *Batch
	log     *zap.Logger
	debug   bool

	pixelWidth  float64
	pixelHeight float64
}

// NewCameras creates an empty registry whose active camera drives batch.
// batch may be nil, in which case cameras only compute their projections.
func NewCameras(batch *Batch, log *zap.Logger) *Cameras {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cameras{
		cameras: make(map[string]*Camera),
		batch:   batch,
		log:     log,
	}
}

// Create registers a camera showing virtualWidth x virtualHeight world units
// with an aspect ratio allowed to vary in [minAspect, maxAspect]. An existing
// camera with the same name is replaced but not disposed.
func (cs *Cameras) Create(name string, virtualWidth, virtualHeight, minAspect, maxAspect float64) *Camera {
	scaler := NewViewportScaler(virtualWidth, virtualHeight, minAspect, maxAspect)
	cam := newCamera(name, cs, scaler, cs.pixelWidth, cs.pixelHeight)
	if _, ok := cs.cameras[name]; ok {
		cs.log.Warn("camera replaced", zap.String("name", name))
	}
	cs.cameras[name] = cam
	cs.log.Debug("camera created",
		zap.String("name", name),
		zap.Float64("width", virtualWidth),
		zap.Float64("height", virtualHeight),
		zap.Float64("minAspect", minAspect),
		zap.Float64("maxAspect", maxAspect),
	)
	return cam
}

// CreateFixed registers a camera whose aspect ratio is fixed to
// virtualWidth / virtualHeight.
func (cs *Cameras) CreateFixed(name string, virtualWidth, virtualHeight float64) *Camera {
	aspect := virtualWidth / virtualHeight
	return cs.Create(name, virtualWidth, virtualHeight, aspect, aspect)
}

// CreateDefault registers a fixed-aspect camera whose virtual size is the
// current window size. The window size must already be known through Resize.
func (cs *Cameras) CreateDefault(name string) *Camera {
	return cs.CreateFixed(name, cs.pixelWidth, cs.pixelHeight)
}

// Get returns the camera registered under name.
func (cs *Cameras) Get(name string) (*Camera, bool) {
	cam, ok := cs.cameras[name]
	return cam, ok
}

// Dispose disposes the camera registered under name, if any.
func (cs *Cameras) Dispose(name string) {
	if cam, ok := cs.cameras[name]; ok {
		cam.Dispose()
	}
}

// DisposeAll disposes every registered camera.
func (cs *Cameras) DisposeAll() {
	for _, cam := range cs.cameras {
		cam.Dispose()
	}
}

// Resize records the window size and passes it to every camera. Cameras
// apply it on their next update.
func (cs *Cameras) Resize(pixelWidth, pixelHeight float64) {
	cs.pixelWidth = pixelWidth
	cs.pixelHeight = pixelHeight
	for _, cam := range cs.cameras {
		cam.doResize(pixelWidth, pixelHeight)
	}
}

// WindowSize returns the last size passed to Resize.
func (cs *Cameras) WindowSize() (width, height float64) {
	return cs.pixelWidth, cs.pixelHeight
}

// Active returns the active camera, or nil.
func (cs *Cameras) Active() *Camera { return cs.active }

// Activate makes cam the active camera. It is equivalent to cam.Activate.
func (cs *Cameras) Activate(cam *Camera) {
	if cam == nil {
		cs.active = nil
		return
	}
	cam.Activate()
}

// Len returns the number of registered cameras.
func (cs *Cameras) Len() int { return len(cs.cameras) }

// remove drops cam from the registry. A camera that has since been replaced
// under its name leaves the replacement in place.
func (cs *Cameras) remove(cam *Camera) {
	if cs.cameras[cam.name] == cam {
		delete(cs.cameras, cam.name)
	}
	if cs.active == cam {
		cs.active = nil
	}
	cs.log.Debug("camera disposed", zap.String("name", cam.name))
}
