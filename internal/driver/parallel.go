package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"pubsweep/internal/diag"
	"pubsweep/internal/source"
)

// Options configures a directory run.
type Options struct {
	Recursive      bool
	MaxDiagnostics int
	Jobs           int
	Write          bool
	BackupSuffix   string
	Extensions     []string
	Excludes       []string
	Cache          *DiskCache
	Events         Sink
}

func (o *Options) extensions() []string {
	if len(o.Extensions) == 0 {
		return []string{".rs"}
	}
	return o.Extensions
}

// ListSourceFiles returns the sorted matching files under dir.
func ListSourceFiles(dir string, exts, excludes []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		matched := false
		for _, ext := range exts {
			if strings.HasSuffix(path, ext) {
				matched = true
				break
			}
		}
		if !matched {
			return nil
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		for _, pattern := range excludes {
			if ok, _ := filepath.Match(pattern, rel); ok {
				return nil
			}
			if ok, _ := filepath.Match(pattern, filepath.Base(path)); ok {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	// deterministic order
	sort.Strings(files)
	return files, nil
}

// RewriteDir rewrites every matching file under dir in parallel. Load
// failures become per-file diagnostics rather than aborting the run;
// only context cancellation stops the group.
func RewriteDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []FileResult, error) {
	files, err := ListSourceFiles(dir, opts.extensions(), opts.Excludes)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		fid, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = fid
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = rewriteWorker(fileSet, path, fileIDs, loadErrors, &opts)

			if opts.Events != nil {
				opts.Events(Event{
					Path:     path,
					Index:    i,
					Total:    len(files),
					Changed:  results[i].Changed,
					CacheHit: results[i].CacheHit,
					Failed:   results[i].Bag.HasErrors(),
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// rewriteWorker handles one file: cache probe, pipeline, write-back.
func rewriteWorker(fileSet *source.FileSet, path string, fileIDs map[string]source.FileID, loadErrors map[string]error, opts *Options) FileResult {
	if loadErr, bad := loadErrors[path]; bad {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{},
			"failed to load file: "+loadErr.Error()))
		return FileResult{Path: path, Bag: bag}
	}

	fid := fileIDs[path]
	sf := fileSet.Get(fid)

	key := CacheKey(sf, opts.Recursive)
	if opts.Cache != nil {
		var payload DiskPayload
		if hit, err := opts.Cache.Get(key, &payload); err == nil && hit {
			result := FileResult{
				Path:     path,
				FileID:   fid,
				Output:   payload.Output,
				Changed:  payload.Changed,
				Markers:  payload.Markers,
				Bag:      diag.NewBag(opts.MaxDiagnostics),
				CacheHit: true,
			}
			writeBack(&result, sf, opts)
			return result
		}
	}

	result := RewriteOne(fileSet, fid, opts.Recursive, opts.MaxDiagnostics)
	result.Path = path

	if opts.Cache != nil && result.Output != nil && result.Bag.Len() == 0 {
		_ = opts.Cache.Put(key, &DiskPayload{
			Schema:  diskCacheSchemaVersion,
			Output:  result.Output,
			Changed: result.Changed,
			Markers: result.Markers,
		})
	}

	writeBack(&result, sf, opts)
	return result
}

// writeBack applies the rewrite to disk when requested. Unchanged
// files are never rewritten.
func writeBack(result *FileResult, sf *source.File, opts *Options) {
	if !opts.Write || result.Output == nil || !result.Changed {
		return
	}
	perm := os.FileMode(0o644)
	if info, err := os.Stat(result.Path); err == nil {
		perm = info.Mode().Perm()
	}
	if opts.BackupSuffix != "" {
		if err := os.WriteFile(result.Path+opts.BackupSuffix, sf.Content, perm); err != nil {
			result.Bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: sf.ID},
				"failed to write backup: "+err.Error()))
			return
		}
	}
	if err := os.WriteFile(result.Path, result.Output, perm); err != nil {
		result.Bag.Add(diag.NewError(diag.IOWriteFileError, source.Span{File: sf.ID},
			"failed to write file: "+err.Error()))
	}
}
