/*
Copyright 2026 Dima Krasner

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package resolver

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"math"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// BlockList is a list of domains that are never searched. It's reloaded when the file changes.
//
// The file is a CSV file with a header row and a domain in the first column of every other row.
type BlockList struct {
	lock    sync.Mutex
	wg      sync.WaitGroup
	w       *fsnotify.Watcher
	domains map[string]struct{}
}

var blockListReloadDelay = time.Second * 5

func loadBlockList(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	domains := map[string]struct{}{}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	if _, err := r.Read(); errors.Is(err, io.EOF) {
		return domains, nil
	} else if err != nil {
		return nil, err
	}

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return domains, nil
		} else if err != nil {
			return nil, err
		}

		if domain := strings.ToLower(strings.TrimSpace(record[0])); domain != "" {
			domains[strings.TrimSuffix(domain, ".")] = struct{}{}
		}
	}
}

// NewBlockList loads a block list and watches it for changes until [BlockList.Close] is called.
func NewBlockList(log *slog.Logger, path string) (*BlockList, error) {
	domains, err := loadBlockList(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	absPath := filepath.Join(dir, filepath.Base(path))

	b := &BlockList{w: w, domains: domains}

	timer := time.NewTimer(math.MaxInt64)
	timer.Stop()

	b.wg.Go(func() {
		for {
			select {
			case event, ok := <-w.Events:
				if !ok {
					timer.Stop()
					return
				}

				if (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) && event.Name == absPath {
					timer.Reset(blockListReloadDelay)
				}

			case err, ok := <-w.Errors:
				if !ok {
					timer.Stop()
					return
				}
				log.Warn("Failed to watch block list", "path", path, "error", err)

			case <-timer.C:
				newDomains, err := loadBlockList(path)
				if err != nil {
					log.Warn("Failed to reload block list", "path", path, "error", err)
					continue
				}

				// the file may be truncated before it's written
				if len(newDomains) == 0 && b.Len() > 0 {
					log.Warn("New block list is empty", "path", path)
					continue
				}

				b.lock.Lock()
				b.domains = newDomains
				b.lock.Unlock()

				log.Info("Reloaded block list", "path", path, "length", len(newDomains))
			}
		}
	})

	return b, nil
}

// Len returns the number of blocked domains.
func (b *BlockList) Len() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.domains)
}

// Contains determines if a host is blocked, either directly or through one of its parent domains.
func (b *BlockList) Contains(host string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}

	host = strings.TrimSuffix(strings.ToLower(host), ".")

	b.lock.Lock()
	defer b.lock.Unlock()

	for host != "" {
		if _, ok := b.domains[host]; ok {
			return true
		}

		_, parent, ok := strings.Cut(host, ".")
		if !ok || !strings.Contains(parent, ".") {
			return false
		}

		host = parent
	}

	return false
}

// Close stops watching the block list file.
func (b *BlockList) Close() {
	b.w.Close()
	b.wg.Wait()
}
