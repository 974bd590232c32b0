package binio

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MappedReader is a Reader over a read-only memory mapping of a file. The
// mapping is a fixed in-memory byte view, so the usual Reader contract
// applies unchanged.
type MappedReader struct {
	*Reader
	mapping mmap.MMap
	loc     string // location of the memory mapped file
}

// OpenMappedReader maps the file at loc into memory read-only and returns a
// MappedReader decoding from the start of the mapping.
func OpenMappedReader(loc string) (*MappedReader, error) {
	f, err := os.Open(loc)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open %v", loc)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot memory map %v", loc)
	}

	if logging {
		logger.Info("mapped file for reading",
			zap.String("module", "mmap"),
			zap.String("loc", loc),
			zap.Int("size", len(m)),
		)
	}

	return &MappedReader{
		NewReader(m),
		m,
		loc,
	}, nil
}

// Loc returns the path of the mapped file.
func (r *MappedReader) Loc() string { return r.loc }

// Close deletes the memory mapping. The embedded Reader, and any spans
// previously returned by ReadBytes, must not be used after Close.
func (r *MappedReader) Close() error {
	if logging {
		logger.Info("unmapping file",
			zap.String("module", "mmap"),
			zap.String("loc", r.loc),
		)
	}

	if err := r.mapping.Unmap(); err != nil {
		return errors.Wrapf(err, "cannot unmap %v", r.loc)
	}

	return nil
}
