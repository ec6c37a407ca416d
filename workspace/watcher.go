package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher re-evaluates .calc files below the workspace root when they
// change on disk.
type FileWatcher struct {
	workspace *Workspace
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
	doneCh    chan struct{}
	stopOnce  sync.Once

	// OnChange is called after a document was updated or removed. The
	// document is nil for removals. It runs on the watcher goroutine.
	OnChange func(path string, doc *Document)
}

func NewFileWatcher(w *Workspace) (*FileWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	watcher := &FileWatcher{
		workspace: w,
		watcher:   fw,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
	if err := watcher.addTree(w.RootDir()); err != nil {
		fw.Close()
		return nil, err
	}
	return watcher, nil
}

func (w *FileWatcher) Start() {
	go w.run()
}

// Stop ends the watcher and waits for its goroutine to exit. Calling it
// again has no effect.
func (w *FileWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.watcher.Close()
	})
}

func (w *FileWatcher) addTree(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(info.Name(), ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func (w *FileWatcher) run() {
	defer close(w.doneCh)
	log := w.workspace.log

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Errorf("watch: %s", err)
		}
	}
}

func (w *FileWatcher) handle(ev fsnotify.Event) {
	log := w.workspace.log

	if ev.Has(fsnotify.Create) {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := w.addTree(ev.Name); err != nil {
				log.Warningf("watch %s: %s", ev.Name, err)
			}
			return
		}
	}

	if filepath.Ext(ev.Name) != Ext {
		return
	}

	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		w.workspace.RemoveFile(ev.Name)
		w.notify(ev.Name, nil)
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		if err := w.workspace.ScanFile(ev.Name); err != nil {
			log.Warningf("scan %s: %s", ev.Name, err)
			return
		}
		w.notify(ev.Name, w.workspace.GetFile(ev.Name))
	}
}

func (w *FileWatcher) notify(path string, doc *Document) {
	if w.OnChange != nil {
		w.OnChange(path, doc)
	}
}
