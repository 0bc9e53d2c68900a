package zxingpipe

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// MultiFormatReader tries every registered reader in Format order and
// returns the first result.
type MultiFormatReader struct {
	readers []Reader
}

// NewMultiFormatReader creates a new multi-format reader. Readers are built
// lazily from the options passed to the first Decode.
func NewMultiFormatReader() *MultiFormatReader {
	return &MultiFormatReader{}
}

// Decode attempts to decode a barcode from the given image using all registered
// format readers.
func (r *MultiFormatReader) Decode(image *BinaryBitmap, opts *DecodeOptions) (*Result, error) {
	if r.readers == nil {
		r.readers = buildReaders(opts)
	}
	if len(r.readers) == 0 {
		return nil, fmt.Errorf("no readers registered: %w", ErrIllegalArgument)
	}
	result, err := r.decodeInternal(image, opts)
	if err == nil {
		return result, nil
	}
	if Classify(err) != KindReader {
		return nil, err
	}
	if opts != nil && opts.AlsoInverted {
		// Flip the cached black matrix in place and try again.
		matrix, merr := image.BlackMatrix()
		if merr != nil {
			return nil, merr
		}
		matrix.FlipAll()
		result, err = r.decodeInternal(image, opts)
		matrix.FlipAll()
		if err == nil {
			return result, nil
		}
		if Classify(err) != KindReader {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

func (r *MultiFormatReader) decodeInternal(image *BinaryBitmap, opts *DecodeOptions) (*Result, error) {
	for _, reader := range r.readers {
		result, err := reader.Decode(image, opts)
		if err == nil {
			return result, nil
		}
		if Classify(err) != KindReader {
			return nil, err
		}
	}
	return nil, ErrNotFound
}

// Reset resets all internal readers.
func (r *MultiFormatReader) Reset() {
	for _, reader := range r.readers {
		reader.Reset()
	}
	r.readers = nil
}

// ReaderFactory creates a Reader configured by opts.
type ReaderFactory func(opts *DecodeOptions) Reader

type registration struct {
	format  Format
	factory ReaderFactory
}

var (
	registryMu sync.RWMutex
	registry   []registration
)

// RegisterReader registers a reader factory for the given format. It is meant
// to be called from an init() function in format-specific packages. A later
// registration for the same format replaces the earlier one.
func RegisterReader(format Format, factory ReaderFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	for i, reg := range registry {
		if reg.format == format {
			registry[i].factory = factory
			return
		}
	}
	registry = append(registry, registration{format: format, factory: factory})
	sort.SliceStable(registry, func(i, j int) bool {
		return registry[i].format < registry[j].format
	})
}

// NewReader returns a reader for a single format.
func NewReader(format Format, opts *DecodeOptions) (Reader, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, reg := range registry {
		if reg.format == format {
			return reg.factory(opts), nil
		}
	}
	return nil, fmt.Errorf("no reader registered for %s: %w", format, ErrIllegalArgument)
}

// LookupReader returns the factory registered for format.
func LookupReader(format Format) (ReaderFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, reg := range registry {
		if reg.format == format {
			return reg.factory, true
		}
	}
	return nil, false
}

// RegisteredFormats lists the formats with a registered reader, in the order
// MultiFormatReader tries them.
func RegisteredFormats() []Format {
	registryMu.RLock()
	defer registryMu.RUnlock()
	formats := make([]Format, len(registry))
	for i, reg := range registry {
		formats[i] = reg.format
	}
	return formats
}

// buildReaders creates readers based on the options. Several formats may
// share one factory (the 1D formats do); such factories are only invoked once.
func buildReaders(opts *DecodeOptions) []Reader {
	registryMu.RLock()
	defer registryMu.RUnlock()

	wanted := func(Format) bool { return true }
	if opts != nil && len(opts.PossibleFormats) > 0 {
		set := make(map[Format]bool, len(opts.PossibleFormats))
		for _, f := range opts.PossibleFormats {
			set[f] = true
		}
		wanted = func(f Format) bool { return set[f] }
	}

	var readers []Reader
	seen := make(map[uintptr]bool)
	for _, reg := range registry {
		if !wanted(reg.format) {
			continue
		}
		key := reflect.ValueOf(reg.factory).Pointer()
		if seen[key] {
			continue
		}
		seen[key] = true
		readers = append(readers, reg.factory(opts))
	}
	return readers
}

// Decode decodes a single barcode from image with a fresh MultiFormatReader.
func Decode(image *BinaryBitmap, opts *DecodeOptions) (*Result, error) {
	return NewMultiFormatReader().Decode(image, opts)
}
