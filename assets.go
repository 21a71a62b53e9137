package ldtk

import (
	"errors"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

// Asset directories under a load path, and the name prefix of what they hold.
const (
	atlasDir   = "atlases"
	textureDir = "textures"
	soundDir   = "sounds"
	musicDir   = "music"
	fontDir    = "fonts"
)

// Assets loads and unloads groups of assets by directory convention and
// registers them by name:
//
//	<path>/atlases/<pack>.json   images  "<path>/atlases/<pack>/<region>"
//	<path>/textures/<name>.png   images  "<path>/textures/<name>"
//	<path>/sounds/<name>.ogg     sounds  "<path>/sounds/<name>"   (or .wav)
//	<path>/music/<name>.ogg      tunes   "<path>/music/<name>"    (or .wav)
//	<path>/fonts/<name>.ttf      fonts   "<path>/fonts/<name>"    (or .otf)
//
// An empty path loads the default group from the root of the file system.
// Font sizes come from trailing digits of the name ("consolas32" is 32
// pixels), defaulting to DefaultFontSize. Missing directories are skipped.
type Assets struct {
	images *Images
	fonts  *Fonts
	sounds *Sounds
	tunes  *Tunes
	log    *zap.Logger
}

// NewAssets creates an Assets that fills the given registries.
func NewAssets(images *Images, fonts *Fonts, sounds *Sounds, tunes *Tunes, log *zap.Logger) *Assets {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assets{images: images, fonts: fonts, sounds: sounds, tunes: tunes, log: log}
}

// LoadDefaults registers the built-in default font.
func (a *Assets) LoadDefaults() error {
	a.log.Info("loading defaults")
	_, err := a.fonts.AddDefault()
	return err
}

// Load loads every asset group under dir of fsys.
func (a *Assets) Load(fsys fs.FS, dir string) error {
	for _, load := range []func(fs.FS, string) error{
		a.LoadAtlases,
		a.LoadTextures,
		a.LoadSounds,
		a.LoadMusic,
		a.LoadFonts,
	} {
		if err := load(fsys, dir); err != nil {
			return err
		}
	}
	return nil
}

// Unload removes every asset Load would register from dir of fsys.
func (a *Assets) Unload(fsys fs.FS, dir string) error {
	for _, unload := range []func(fs.FS, string) error{
		a.UnloadAtlases,
		a.UnloadTextures,
		a.UnloadSounds,
		a.UnloadMusic,
		a.UnloadFonts,
	} {
		if err := unload(fsys, dir); err != nil {
			return err
		}
	}
	return nil
}

// LoadAtlases loads TexturePacker sheets and their page images.
func (a *Assets) LoadAtlases(fsys fs.FS, dir string) error {
	files, err := assetFiles(fsys, path.Join(dir, atlasDir), ".json")
	if err != nil {
		return err
	}
	a.log.Info("loading atlases", zap.String("path", dir), zap.Int("count", len(files)))
	for _, file := range files {
		sheet, err := readAtlas(fsys, file)
		if err != nil {
			return err
		}
		pages := make([]*ebiten.Image, len(sheet.Pages))
		for i, page := range sheet.Pages {
			pagePath := path.Join(path.Dir(file), page)
			img, _, err := ebitenutil.NewImageFromFileSystem(fsys, pagePath)
			if err != nil {
				return fmt.Errorf("ldtk: failed to load atlas page %s: %w", pagePath, err)
			}
			pages[i] = img
		}
		prefix := assetName(dir, atlasDir, file)
		for _, r := range sheet.Regions {
			if r.Page < 0 || r.Page >= len(pages) {
				return fmt.Errorf("ldtk: atlas %s: region %q on missing page %d", file, r.Name, r.Page)
			}
			a.images.Add(prefix+"/"+r.Name, regionImage(pages[r.Page], r))
		}
	}
	return nil
}

// UnloadAtlases removes the regions of the sheets under dir.
func (a *Assets) UnloadAtlases(fsys fs.FS, dir string) error {
	files, err := assetFiles(fsys, path.Join(dir, atlasDir), ".json")
	if err != nil {
		return err
	}
	for _, file := range files {
		sheet, err := readAtlas(fsys, file)
		if err != nil {
			return err
		}
		prefix := assetName(dir, atlasDir, file)
		for _, r := range sheet.Regions {
			a.images.Dispose(prefix + "/" + r.Name)
		}
	}
	return nil
}

func readAtlas(fsys fs.FS, file string) (*AtlasSheet, error) {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return nil, fmt.Errorf("ldtk: failed to read atlas %s: %w", file, err)
	}
	sheet, err := ParseAtlas(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return sheet, nil
}

// LoadTextures loads PNG textures.
func (a *Assets) LoadTextures(fsys fs.FS, dir string) error {
	files, err := assetFiles(fsys, path.Join(dir, textureDir), ".png")
	if err != nil {
		return err
	}
	a.log.Info("loading textures", zap.String("path", dir), zap.Int("count", len(files)))
	for _, file := range files {
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, file)
		if err != nil {
			return fmt.Errorf("ldtk: failed to load texture %s: %w", file, err)
		}
		a.images.Add(assetName(dir, textureDir, file), img)
	}
	return nil
}

// UnloadTextures removes the textures under dir.
func (a *Assets) UnloadTextures(fsys fs.FS, dir string) error {
	return a.unloadNames(fsys, dir, textureDir, a.images.Dispose, ".png")
}

// LoadSounds loads sound clips.
func (a *Assets) LoadSounds(fsys fs.FS, dir string) error {
	files, err := assetFiles(fsys, path.Join(dir, soundDir), ".ogg", ".wav")
	if err != nil {
		return err
	}
	a.log.Info("loading sounds", zap.String("path", dir), zap.Int("count", len(files)))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("ldtk: failed to read sound %s: %w", file, err)
		}
		if _, err := a.sounds.Add(assetName(dir, soundDir, file), file, data); err != nil {
			return err
		}
	}
	return nil
}

// UnloadSounds removes the sounds under dir.
func (a *Assets) UnloadSounds(fsys fs.FS, dir string) error {
	return a.unloadNames(fsys, dir, soundDir, func(name string) {
		if s, ok := a.sounds.Get(name); ok {
			s.Dispose()
		}
	}, ".ogg", ".wav")
}

// LoadMusic loads tunes.
func (a *Assets) LoadMusic(fsys fs.FS, dir string) error {
	files, err := assetFiles(fsys, path.Join(dir, musicDir), ".ogg", ".wav")
	if err != nil {
		return err
	}
	a.log.Info("loading music", zap.String("path", dir), zap.Int("count", len(files)))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("ldtk: failed to read music %s: %w", file, err)
		}
		if _, err := a.tunes.Add(assetName(dir, musicDir, file), file, data); err != nil {
			return err
		}
	}
	return nil
}

// UnloadMusic removes the tunes under dir.
func (a *Assets) UnloadMusic(fsys fs.FS, dir string) error {
	return a.unloadNames(fsys, dir, musicDir, func(name string) {
		if t, ok := a.tunes.Get(name); ok {
			t.Dispose()
		}
	}, ".ogg", ".wav")
}

// LoadFonts loads TrueType and OpenType fonts.
func (a *Assets) LoadFonts(fsys fs.FS, dir string) error {
	files, err := assetFiles(fsys, path.Join(dir, fontDir), ".ttf", ".otf")
	if err != nil {
		return err
	}
	a.log.Info("loading fonts", zap.String("path", dir), zap.Int("count", len(files)))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return fmt.Errorf("ldtk: failed to read font %s: %w", file, err)
		}
		name := assetName(dir, fontDir, file)
		if _, err := a.fonts.AddTTF(name, data, fontSize(name)); err != nil {
			return err
		}
	}
	return nil
}

// UnloadFonts removes the fonts under dir.
func (a *Assets) UnloadFonts(fsys fs.FS, dir string) error {
	return a.unloadNames(fsys, dir, fontDir, a.fonts.Dispose, ".ttf", ".otf")
}

func (a *Assets) unloadNames(fsys fs.FS, dir, kind string, dispose func(string), exts ...string) error {
	files, err := assetFiles(fsys, path.Join(dir, kind), exts...)
	if err != nil {
		return err
	}
	for _, file := range files {
		dispose(assetName(dir, kind, file))
	}
	return nil
}

// assetFiles lists the files in dir with one of the given extensions, in
// directory order. A missing dir yields no files.
func assetFiles(fsys fs.FS, dir string, exts ...string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ldtk: failed to list %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(path.Ext(e.Name()))
		for _, want := range exts {
			if ext == want {
				files = append(files, path.Join(dir, e.Name()))
				break
			}
		}
	}
	return files, nil
}

// assetName builds the registry name of file, which lives in dir/kind.
func assetName(dir, kind, file string) string {
	base := path.Base(file)
	return path.Join(dir, kind, strings.TrimSuffix(base, path.Ext(base)))
}

// fontSize parses the trailing digits of a font name as its pixel size.
func fontSize(name string) float64 {
	end := len(name)
	start := end
	for start > 0 && name[start-1] >= '0' && name[start-1] <= '9' {
		start--
	}
	if start == end {
		return DefaultFontSize
	}
	n, err := strconv.Atoi(name[start:end])
	if err != nil || n <= 0 {
		return DefaultFontSize
	}
	return float64(n)
}
