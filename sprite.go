package charts

// Style holds the paint settings of a sprite. Style is applied at raster
// time; changing it never invalidates the sprite's cached path.
type Style struct {
	// Fill is the fill color. A transparent fill draws nothing.
	Fill RGBA
	// Stroke is the stroke color for outlines and open polylines.
	Stroke RGBA
	// StrokeWidth is the stroke width in pixels. Zero disables stroking.
	StrokeWidth float64
}

// Item is anything that can be placed in a Scene. Concrete shapes embed
// Sprite and get the implementation for free.
type Item interface {
	AsSprite() *Sprite
}

// Sprite is the base display object. It carries placement (position,
// rotation, visibility), a paint style, and a lazily rebuilt vector path.
//
// Geometry setters on concrete shapes call Invalidate, which discards the
// cached path so the next Path call rebuilds it. Placement setters and
// SetStyle do not touch the cache: they are transforms and paint, not
// geometry.
type Sprite struct {
	x, y     float64
	rotation float64
	visible  bool
	style    Style

	path   *Path       // cached local-space path; nil after Invalidate
	redraw func(*Path) // shape hook installed by the concrete type
}

// init wires the shape redraw hook. Concrete shape constructors call it
// once after allocation.
func (s *Sprite) init(redraw func(*Path)) {
	s.visible = true
	s.redraw = redraw
}

// AsSprite returns the sprite base. It makes every embedding shape
// satisfy Item.
func (s *Sprite) AsSprite() *Sprite { return s }

// SetPosition moves the sprite to (x, y) in scene coordinates.
// The cached path is local; moving never triggers a redraw.
func (s *Sprite) SetPosition(x, y float64) {
	s.x, s.y = x, y
}

// Position returns the sprite position in scene coordinates.
func (s *Sprite) Position() (x, y float64) {
	return s.x, s.y
}

// SetRotation sets the sprite rotation in radians around its position.
func (s *Sprite) SetRotation(angle float64) {
	s.rotation = angle
}

// Rotation returns the sprite rotation in radians.
func (s *Sprite) Rotation() float64 {
	return s.rotation
}

// SetVisible toggles whether renderers draw the sprite.
func (s *Sprite) SetVisible(v bool) {
	s.visible = v
}

// Visible reports whether renderers draw the sprite.
func (s *Sprite) Visible() bool {
	return s.visible
}

// SetStyle replaces the paint style.
func (s *Sprite) SetStyle(st Style) {
	s.style = st
}

// Style returns the paint style.
func (s *Sprite) Style() Style {
	return s.style
}

// Invalidate discards the cached path, forcing a full redraw on the next
// Path call.
func (s *Sprite) Invalidate() {
	s.path = nil
}

// NeedsRedraw reports whether the cached path has been discarded and the
// next Path call will rebuild it.
func (s *Sprite) NeedsRedraw() bool {
	return s.path == nil
}

// Path returns the sprite's vector path in local coordinates, rebuilding
// it through the shape hook when the cache is empty.
func (s *Sprite) Path() *Path {
	if s.path == nil {
		p := NewPath()
		if s.redraw != nil {
			s.redraw(p)
		}
		s.path = p
	}
	return s.path
}

// ScenePath returns the path transformed into scene coordinates
// (rotated by Rotation, translated to Position).
func (s *Sprite) ScenePath() *Path {
	return s.Path().Transformed(s.x, s.y, s.rotation)
}
