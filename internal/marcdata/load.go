package marcdata

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tliron/commonlog"
)

//go:embed data/*.json
var embeddedData embed.FS

var log = commonlog.GetLogger("marclsp.data")

// Definition file names, matching the generated dataset layout.
const (
	bibliographicFile = "marc_bibliographic.json"
	holdingsFile      = "marc_holdings.json"
	fixedFieldsFile   = "marc_fixed_fields.json"
)

type tagFile struct {
	Tags map[string]TagDefinition `json:"tags"`
}

type fixedFieldFile struct {
	Fields map[RecordType]map[string]PositionTable `json:"fields"`
}

// Default loads the embedded dataset shipped with the binary.
func Default() (*StaticData, error) {
	sub, err := fs.Sub(embeddedData, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded data: %w", err)
	}
	return LoadFS(sub)
}

// LoadDir loads definition files from a directory, for users who
// maintain their own dataset.
func LoadDir(dir string) (*StaticData, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads the three definition files from a filesystem. Missing
// files are tolerated (their tables stay empty); malformed files are
// errors.
func LoadFS(fsys fs.FS) (*StaticData, error) {
	var bib, hold tagFile
	if err := readJSON(fsys, bibliographicFile, &bib); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, holdingsFile, &hold); err != nil {
		return nil, err
	}

	var fixed fixedFieldFile
	if err := readJSON(fsys, fixedFieldsFile, &fixed); err != nil {
		return nil, err
	}

	data := New(bib.Tags, hold.Tags, fixed.Fields)
	b, h, f := data.Counts()
	log.Infof("loaded %d bibliographic tags, %d holdings tags, %d fixed field tables", b, h, f)
	return data, nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}
