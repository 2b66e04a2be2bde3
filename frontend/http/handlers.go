package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"

	"github.com/wellfin/wellfin/finance"
	"github.com/wellfin/wellfin/mockdata"
	"github.com/wellfin/wellfin/pkg/log"
	"github.com/wellfin/wellfin/pkg/seededrand"
	"github.com/wellfin/wellfin/preferences"
)

const defaultMockCount = 10

// ServiceName is reported by the version route.
const ServiceName = "FinanceAPI"

// SampleUserName is the display name of the user returned for any id.
const SampleUserName = "Sample User"

// versionResponse is the body of the version route.
type versionResponse struct {
	Service string `json:"service"`
	Status  string `json:"status"`
}

var (
	errBlankUserID   = finance.ClientError("user id must not be blank")
	errInvalidCount  = finance.ClientError("count must be a non-negative integer")
	errInvalidPrefs  = finance.ClientError("malformed preferences document")
	errEmptyPrefBody = finance.ClientError("preferences document must not be empty")
)

func (f *Frontend) health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, err := w.Write([]byte("ok"))
	return err
}

func (f *Frontend) version(w http.ResponseWriter, r *http.Request, _ httprouter.Params) error {
	return WriteJSON(w, versionResponse{Service: ServiceName, Status: "running"})
}

func (f *Frontend) user(w http.ResponseWriter, r *http.Request, p httprouter.Params) error {
	id := p.ByName("id")
	if !finance.IsNonEmpty(id) {
		return errBlankUserID
	}
	return WriteJSON(w, finance.UserDTO{ID: id, DisplayName: SampleUserName})
}

// mockRequest is a parsed request for generated records.
type mockRequest struct {
	kind     mockdata.Kind
	provider mockdata.Provider
	count    int
}

func (m mockRequest) cacheKey() string {
	return fmt.Sprintf("%s/%d/%s/%d", m.kind, m.provider.Seed(), m.provider.Variant(), m.count)
}

// parseMockRequest reads the kind from the route and count, seed and dataset
// from the query. Without a dataset the stored preference is used; without a
// seed the variant's canonical provider is used.
func (f *Frontend) parseMockRequest(r *http.Request, p httprouter.Params) (mockRequest, error) {
	var req mockRequest

	kind, err := mockdata.ParseKind(p.ByName("kind"))
	if err != nil {
		return req, err
	}
	req.kind = kind

	q := r.URL.Query()

	req.count = defaultMockCount
	if raw := q.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return req, errInvalidCount
		}
		req.count = n
	}
	if req.count > f.MaxCount {
		req.count = f.MaxCount
	}

	var variant finance.DatasetVariant
	if raw := q.Get("dataset"); raw != "" {
		variant, err = finance.ParseDatasetVariant(raw)
		if err != nil {
			return req, err
		}
	} else {
		prefs, err := preferences.Load(f.prefs)
		if err != nil {
			return req, err
		}
		variant = prefs.Dataset()
	}

	if raw := strings.TrimSpace(q.Get("seed")); raw != "" {
		req.provider = mockdata.NewConfigurable(seededrand.ParseSeed(raw), variant)
	} else {
		req.provider = mockdata.ForVariant(variant)
	}

	return req, nil
}

func (f *Frontend) mock(w http.ResponseWriter, r *http.Request, p httprouter.Params) error {
	req, err := f.parseMockRequest(r, p)
	if err != nil {
		return err
	}

	key := req.cacheKey()
	if cached, ok := f.cache.Get(key); ok {
		recordCacheLookup(true)
		return writeRawJSON(w, cached.([]byte))
	}
	recordCacheLookup(false)

	records, err := mockdata.Generate(req.provider, req.kind, req.count, mockdata.WithClock(f.now))
	if err != nil {
		return err
	}

	b, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "failed to encode generated records")
	}
	f.cache.Set(key, b)

	log.Debug("http: generated records", log.Fields{
		"kind":    req.kind,
		"seed":    req.provider.Seed(),
		"dataset": req.provider.Variant(),
		"count":   req.count,
	})

	return writeRawJSON(w, b)
}

func (f *Frontend) getPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) error {
	prefs, err := preferences.Load(f.prefs)
	if err != nil {
		return err
	}
	return WriteJSON(w, prefs)
}

// putPreferences applies a partial JSON document over the stored preferences.
func (f *Frontend) putPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) error {
	prefs, err := preferences.Load(f.prefs)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&prefs); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyPrefBody
		}
		return errInvalidPrefs
	}

	if err := prefs.Validate(); err != nil {
		return err
	}
	if err := preferences.Save(f.prefs, prefs); err != nil {
		return err
	}

	log.Info("http: preferences updated", log.Fields{"selectedDataset": prefs.SelectedDataset})
	return WriteJSON(w, prefs)
}

func (f *Frontend) resetPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) error {
	prefs, err := preferences.Reset(f.prefs)
	if err != nil {
		return err
	}
	return WriteJSON(w, prefs)
}
