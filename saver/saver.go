// Package saver persists plot object trees. Every object reachable from a
// saved object that is worth keeping is written to a backing store group
// mirroring a directory under the saver's base directory, and canvases are
// also rendered there as PDF and PNG files.
package saver

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/HamletTheHamster/plothelper/graphics"
	"github.com/HamletTheHamster/plothelper/plotobj"
	"github.com/HamletTheHamster/plothelper/store"
)

// StoreFile is the name of the backing store file under the base directory.
const StoreFile = "data.root"

// DataSaver writes objects below BaseDir and into its store.
// It must not be used concurrently.
type DataSaver struct {
	BaseDir string

	// Logger, when set, receives one line per persisted object.
	Logger *log.Logger

	store store.Store
}

// Open creates baseDir if needed and opens baseDir/data.root. With recreate
// set the previous content of the store is discarded, otherwise it is
// updated.
func Open(baseDir string, recreate bool) (*DataSaver, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("saver: could not create base directory: %w", err)
	}
	st, err := store.OpenRootFile(filepath.Join(baseDir, StoreFile), recreate)
	if err != nil {
		return nil, fmt.Errorf("saver: %w", err)
	}
	return New(baseDir, st), nil
}

// New returns a saver writing files below baseDir and objects into st.
func New(baseDir string, st store.Store) *DataSaver {
	return &DataSaver{BaseDir: baseDir, store: st}
}

// Store returns the backing store.
func (ds *DataSaver) Store() store.Store { return ds.store }

// Close flushes the backing store.
func (ds *DataSaver) Close() error {
	if err := ds.store.Close(); err != nil {
		return fmt.Errorf("saver: could not close store: %w", err)
	}
	return nil
}

// CreateDirectories creates relPath below the base directory and returns
// the resulting path.
func (ds *DataSaver) CreateDirectories(relPath string) (string, error) {
	dir := filepath.Join(ds.BaseDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("saver: %w", err)
	}
	return dir, nil
}

// SaveObject persists obj and the persistable objects below it into the
// group relDir, creating the directory and the group on first use.
//
// A pad is written only when it is a top-level canvas; its primitives and
// sub-pads are always visited. Multi-graphs and stacks are written and
// their members visited. Any other object is written when its kind is
// persistable and skipped otherwise.
func (ds *DataSaver) SaveObject(obj plotobj.Object, relDir string) error {
	if _, err := ds.CreateDirectories(relDir); err != nil {
		return err
	}
	g, err := ds.store.Group(filepath.ToSlash(relDir))
	if err != nil {
		return fmt.Errorf("saver: could not open group %q: %w", relDir, err)
	}
	return ds.save(g, obj)
}

func (ds *DataSaver) save(g store.Group, obj plotobj.Object) error {
	switch obj.Kind() {
	case plotobj.KindPad:
		pad := obj.(*plotobj.Pad)
		if pad.Canvas {
			if err := ds.put(g, pad); err != nil {
				return err
			}
		}
		for _, c := range pad.Children() {
			if err := ds.save(g, c); err != nil {
				return err
			}
		}
		return nil

	case plotobj.KindMultiGraph, plotobj.KindStack:
		if err := ds.put(g, obj); err != nil {
			return err
		}
		for _, c := range obj.(plotobj.Container).Children() {
			if err := ds.save(g, c); err != nil {
				return err
			}
		}
		return nil
	}

	if !plotobj.Persistable(obj.Kind()) {
		return nil
	}
	return ds.put(g, obj)
}

func (ds *DataSaver) put(g store.Group, obj plotobj.Object) error {
	if err := g.Put(obj); err != nil {
		return fmt.Errorf("saver: could not write %v %q: %w", obj.Kind(), obj.Name(), err)
	}
	if ds.Logger != nil {
		ds.Logger.Printf("saved %v %q in %q", obj.Kind(), obj.Name(), g.Name())
	}
	return nil
}

// WriteCanvas renders c to relDir/<name>.pdf and relDir/png/<name>.png, then
// saves it with SaveObject.
func (ds *DataSaver) WriteCanvas(c *plotobj.Pad, relDir string) error {
	if err := ds.WriteCanvasWithoutDataSaving(c, relDir); err != nil {
		return err
	}
	return ds.SaveObject(c, relDir)
}

// WriteCanvasWithoutDataSaving only renders the files of WriteCanvas.
func (ds *DataSaver) WriteCanvasWithoutDataSaving(c *plotobj.Pad, relDir string) error {
	dir, err := ds.CreateDirectories(relDir)
	if err != nil {
		return err
	}
	pngDir, err := ds.CreateDirectories(path.Join(filepath.ToSlash(relDir), "png"))
	if err != nil {
		return err
	}

	if err := graphics.RenderFile(c, filepath.Join(dir, c.Name()+".pdf")); err != nil {
		return fmt.Errorf("saver: %w", err)
	}
	if err := graphics.RenderFile(c, filepath.Join(pngDir, c.Name()+".png")); err != nil {
		return fmt.Errorf("saver: %w", err)
	}
	return nil
}

// WriteAnimation renders canvases as the frames of relDir/<name>.gif, each
// shown for delay hundredths of a second.
func (ds *DataSaver) WriteAnimation(name string, canvases []*plotobj.Pad, delay int, relDir string) error {
	dir, err := ds.CreateDirectories(relDir)
	if err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, name+".gif"))
	if err != nil {
		return fmt.Errorf("saver: %w", err)
	}
	defer f.Close()

	if err := graphics.Animate(f, canvases, delay); err != nil {
		return fmt.Errorf("saver: %w", err)
	}
	return f.Close()
}
