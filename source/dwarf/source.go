package dwarf

import (
	dw "debug/dwarf"
	"debug/elf"
	"debug/macho"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/typelayout/errors"
	"github.com/wippyai/typelayout/typedesc"
)

// Source resolves type descriptors from one binary's DWARF data. Not safe
// for concurrent use: the underlying DWARF reader is stateful.
type Source struct {
	closer io.Closer
	data   *dw.Data
}

// Open reads the DWARF data of the ELF or Mach-O binary at path.
func Open(path string) (*Source, error) {
	if ef, err := elf.Open(path); err == nil {
		data, derr := ef.DWARF()
		if derr != nil {
			ef.Close()
			return nil, fmt.Errorf("load DWARF from %s: %w", path, derr)
		}
		return &Source{closer: ef, data: data}, nil
	}

	mf, err := macho.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: not an ELF or Mach-O binary", path)
	}
	data, derr := mf.DWARF()
	if derr != nil {
		mf.Close()
		return nil, fmt.Errorf("load DWARF from %s: %w", path, derr)
	}
	return &Source{closer: mf, data: data}, nil
}

// Close releases the underlying binary.
func (s *Source) Close() error {
	return s.closer.Close()
}

// Resolve looks name up as a type and, failing that, as a global variable
// whose type is used instead.
func (s *Source) Resolve(name string) (*typedesc.TypeDescriptor, error) {
	log := Logger()
	log.Debug("resolving type", zap.String("name", name))

	typ, err := s.lookupType(name)
	if err != nil {
		var verr error
		typ, verr = s.lookupVariableType(name)
		if verr != nil {
			log.Debug("resolution failed", zap.String("name", name))
			return nil, err
		}
		log.Debug("resolved as variable", zap.String("name", name))
	}

	desc, err := convertType(typ, name, nil)
	if err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	return desc, nil
}

var typeTags = map[dw.Tag]bool{
	dw.TagStructType:      true,
	dw.TagClassType:       true,
	dw.TagUnionType:       true,
	dw.TagEnumerationType: true,
	dw.TagBaseType:        true,
	dw.TagTypedef:         true,
}

func (s *Source) lookupType(name string) (dw.Type, error) {
	r := s.data.Reader()
	for {
		entry, err := r.Next()
		if err != nil {
			return nil, errors.New(errors.PhaseResolve, errors.KindInvalidMetadata).
				Detail("reading debug info").
				Cause(err).
				Build()
		}
		if entry == nil {
			break
		}
		if !typeTags[entry.Tag] {
			continue
		}
		if n, _ := entry.Val(dw.AttrName).(string); n != name {
			continue
		}
		// Forward declarations carry no layout; keep scanning for the
		// definition.
		if decl, _ := entry.Val(dw.AttrDeclaration).(bool); decl {
			continue
		}
		return s.data.Type(entry.Offset)
	}
	return nil, errors.NotFound(errors.PhaseResolve, name)
}

func (s *Source) lookupVariableType(name string) (dw.Type, error) {
	r := s.data.Reader()
	for {
		entry, err := r.Next()
		if err != nil {
			return nil, errors.New(errors.PhaseResolve, errors.KindInvalidMetadata).
				Detail("reading debug info").
				Cause(err).
				Build()
		}
		if entry == nil {
			break
		}
		if entry.Tag != dw.TagVariable {
			continue
		}
		if n, _ := entry.Val(dw.AttrName).(string); n != name {
			continue
		}
		off, ok := entry.Val(dw.AttrType).(dw.Offset)
		if !ok {
			continue
		}
		return s.data.Type(off)
	}
	return nil, errors.NotFound(errors.PhaseResolve, name)
}
