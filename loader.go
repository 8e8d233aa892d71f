package sitegen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/metergeist/sitegen/views"
)

// LoadCameras reads every *.json record in dir, decodes it, and returns the
// sorted collection. Any unreadable or malformed file fails the whole run;
// there is no partial-success mode.
func LoadCameras(dir string) ([]views.Camera, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read camera directory: %w", err)
	}
	var cameras []views.Camera
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		var c views.Camera
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		cameras = append(cameras, c)
	}
	SortCameras(cameras)
	return cameras, nil
}

// SortCameras orders the collection: brand (locale-aware), then production
// start year ascending, then ID. The ID tie-break keeps output independent of
// directory enumeration order.
func SortCameras(cameras []views.Camera) {
	coll := collate.New(language.English)
	sort.SliceStable(cameras, func(i, j int) bool {
		if c := coll.CompareString(cameras[i].Brand, cameras[j].Brand); c != 0 {
			return c < 0
		}
		if cameras[i].YearStart != cameras[j].YearStart {
			return cameras[i].YearStart < cameras[j].YearStart
		}
		return cameras[i].ID < cameras[j].ID
	})
}

// GroupByBrand builds the brand -> cameras mapping in one forward pass over
// the sorted collection, so each group preserves the global order.
func GroupByBrand(cameras []views.Camera) map[string][]views.Camera {
	groups := make(map[string][]views.Camera)
	for _, c := range cameras {
		groups[c.Brand] = append(groups[c.Brand], c)
	}
	return groups
}
