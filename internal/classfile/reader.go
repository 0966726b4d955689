package classfile

import (
	"fmt"

	"github.com/funvibe/funbit/pkg/funbit"
)

const magic = 0xCAFEBABE

// Constant pool tags.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

// Parse decodes a class file image into its parsed view. Attributes are
// skipped, constant pool entries other than Utf8 and Class are read only
// to keep indices aligned.
func Parse(data []byte) (*ClassFile, error) {
	minor, major, err := matchHeader(data)
	if err != nil {
		return nil, err
	}

	r := &reader{data: data, offset: 8}
	pool, err := readConstantPool(r)
	if err != nil {
		return nil, err
	}

	accessFlags, err := r.u2()
	if err != nil {
		return nil, err
	}
	thisClass, err := r.u2()
	if err != nil {
		return nil, err
	}
	superClass, err := r.u2()
	if err != nil {
		return nil, err
	}

	cf := &ClassFile{
		MinorVersion: minor,
		MajorVersion: major,
		AccessFlags:  accessFlags,
	}
	cf.ThisClassInternalName, err = pool.className(thisClass)
	if err != nil {
		return nil, err
	}
	if superClass != 0 {
		cf.SuperClassInternalName, err = pool.className(superClass)
		if err != nil {
			return nil, err
		}
	}

	interfaceCount, err := r.u2()
	if err != nil {
		return nil, err
	}
	for i := uint16(0); i < interfaceCount; i++ {
		index, err := r.u2()
		if err != nil {
			return nil, err
		}
		name, err := pool.className(index)
		if err != nil {
			return nil, err
		}
		cf.InterfaceInternalNames = append(cf.InterfaceInternalNames, name)
	}

	cf.Fields, err = readMembers(r, pool)
	if err != nil {
		return nil, err
	}
	cf.Methods, err = readMembers(r, pool)
	if err != nil {
		return nil, err
	}
	return cf, nil
}

// matchHeader binds the leading eight bytes as magic(32), minor(16) and
// major(16) big-endian segments.
func matchHeader(data []byte) (minor, major uint16, err error) {
	if len(data) < 8 {
		return 0, 0, fmt.Errorf("class image truncated: %d bytes", len(data))
	}
	var magicWord, minorWord, majorWord uint
	matcher := funbit.NewMatcher()
	funbit.Integer(matcher, &magicWord, funbit.WithSize(32))
	funbit.Integer(matcher, &minorWord, funbit.WithSize(16))
	funbit.Integer(matcher, &majorWord, funbit.WithSize(16))
	if _, err := matcher.Match(funbit.NewBitStringFromBytes(data[:8])); err != nil {
		return 0, 0, err
	}
	if magicWord != magic {
		return 0, 0, fmt.Errorf("bad class magic 0x%08X", magicWord)
	}
	return uint16(minorWord), uint16(majorWord), nil
}

type reader struct {
	data   []byte
	offset int
}

func (r *reader) remaining() int { return len(r.data) - r.offset }

func (r *reader) u1() (byte, error) {
	if r.remaining() < 1 {
		return 0, fmt.Errorf("class image truncated at offset %d", r.offset)
	}
	b := r.data[r.offset]
	r.offset++
	return b, nil
}

func (r *reader) u2() (uint16, error) {
	if r.remaining() < 2 {
		return 0, fmt.Errorf("class image truncated at offset %d", r.offset)
	}
	v := uint16(r.data[r.offset])<<8 | uint16(r.data[r.offset+1])
	r.offset += 2
	return v, nil
}

func (r *reader) u4() (uint32, error) {
	if r.remaining() < 4 {
		return 0, fmt.Errorf("class image truncated at offset %d", r.offset)
	}
	v := uint32(r.data[r.offset])<<24 |
		uint32(r.data[r.offset+1])<<16 |
		uint32(r.data[r.offset+2])<<8 |
		uint32(r.data[r.offset+3])
	r.offset += 4
	return v, nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if r.remaining() < n {
		return nil, fmt.Errorf("class image truncated at offset %d", r.offset)
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

func (r *reader) skip(n int) error {
	if r.remaining() < n {
		return fmt.Errorf("class image truncated at offset %d", r.offset)
	}
	r.offset += n
	return nil
}

// constantPool keeps only what name resolution needs: Utf8 strings and
// Class name indices. Slot 0 is unused, Long and Double occupy two slots.
type constantPool struct {
	utf8       map[uint16]string
	classNames map[uint16]uint16
}

func (p *constantPool) utf8At(index uint16) (string, error) {
	s, ok := p.utf8[index]
	if !ok {
		return "", fmt.Errorf("constant pool slot %d is not a Utf8 entry", index)
	}
	return s, nil
}

func (p *constantPool) className(index uint16) (string, error) {
	nameIndex, ok := p.classNames[index]
	if !ok {
		return "", fmt.Errorf("constant pool slot %d is not a Class entry", index)
	}
	return p.utf8At(nameIndex)
}

func readConstantPool(r *reader) (*constantPool, error) {
	count, err := r.u2()
	if err != nil {
		return nil, err
	}
	pool := &constantPool{
		utf8:       map[uint16]string{},
		classNames: map[uint16]uint16{},
	}
	for index := uint16(1); index < count; index++ {
		tag, err := r.u1()
		if err != nil {
			return nil, err
		}
		switch tag {
		case tagUtf8:
			length, err := r.u2()
			if err != nil {
				return nil, err
			}
			raw, err := r.bytes(int(length))
			if err != nil {
				return nil, err
			}
			pool.utf8[index] = string(raw)
		case tagClass:
			nameIndex, err := r.u2()
			if err != nil {
				return nil, err
			}
			pool.classNames[index] = nameIndex
		case tagInteger, tagFloat:
			if err := r.skip(4); err != nil {
				return nil, err
			}
		case tagLong, tagDouble:
			if err := r.skip(8); err != nil {
				return nil, err
			}
			index++
		case tagString, tagMethodType, tagModule, tagPackage:
			if err := r.skip(2); err != nil {
				return nil, err
			}
		case tagMethodHandle:
			if err := r.skip(3); err != nil {
				return nil, err
			}
		case tagFieldref, tagMethodref, tagInterfaceMethodref, tagNameAndType, tagDynamic, tagInvokeDynamic:
			if err := r.skip(4); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown constant pool tag %d at slot %d", tag, index)
		}
	}
	return pool, nil
}

func readMembers(r *reader, pool *constantPool) ([]MemberInfo, error) {
	count, err := r.u2()
	if err != nil {
		return nil, err
	}
	members := make([]MemberInfo, 0, count)
	for i := uint16(0); i < count; i++ {
		accessFlags, err := r.u2()
		if err != nil {
			return nil, err
		}
		nameIndex, err := r.u2()
		if err != nil {
			return nil, err
		}
		descriptorIndex, err := r.u2()
		if err != nil {
			return nil, err
		}
		name, err := pool.utf8At(nameIndex)
		if err != nil {
			return nil, err
		}
		descriptor, err := pool.utf8At(descriptorIndex)
		if err != nil {
			return nil, err
		}
		if err := skipAttributes(r); err != nil {
			return nil, err
		}
		members = append(members, MemberInfo{
			AccessFlags: accessFlags,
			Name:        name,
			Descriptor:  descriptor,
		})
	}
	return members, nil
}

func skipAttributes(r *reader) error {
	count, err := r.u2()
	if err != nil {
		return err
	}
	for i := uint16(0); i < count; i++ {
		if err := r.skip(2); err != nil {
			return err
		}
		length, err := r.u4()
		if err != nil {
			return err
		}
		if err := r.skip(int(length)); err != nil {
			return err
		}
	}
	return nil
}
