package pdf

// PrintPermission controls the granularity of the printing permission bit:
// no printing at all, degraded-quality only, or full-fidelity.
type PrintPermission int

const (
	// PrintNone denies printing entirely.
	PrintNone PrintPermission = iota
	// PrintLowResolution allows only a degraded-quality rendering.
	PrintLowResolution
	// PrintHighResolution allows full-fidelity printing. This is also what
	// a bare `printing: true` configuration selects.
	PrintHighResolution
)

// Permissions is the set of capabilities recognized by the Standard
// security handler.
type Permissions struct {
	Printing             PrintPermission
	Modifying            bool
	Copying              bool
	Annotating           bool
	FillingForms         bool
	ContentAccessibility bool
	DocumentAssembly     bool
}

// permissionsValue packs p into the 32-bit signed permissions bitmask
// stored in /P. Bits 1-2 are always cleared and bit 7 is always left set;
// a capability bit is cleared unless p grants that capability, and every
// bit that names no capability is left set.
func permissionsValue(p Permissions, r int) int32 {
	val := int32(-4) // ...11111100: clears bits 1-2, leaves everything else (incl. bit 7) set

	if r <= 2 {
		if p.Printing == PrintNone {
			val &^= 1 << 2 // bit 3
		}
		if !p.Modifying {
			val &^= 1 << 3 // bit 4
		}
		if !p.Copying {
			val &^= 1 << 4 // bit 5
		}
		if !p.Annotating {
			val &^= 1 << 5 // bit 6
		}
		return val
	}

	switch p.Printing {
	case PrintHighResolution:
		// bits 3 and 12 both stay set
	case PrintLowResolution:
		val &^= 1 << 11 // bit 12
	case PrintNone:
		val &^= 1 << 2  // bit 3
		val &^= 1 << 11 // bit 12
	}
	if !p.Modifying {
		val &^= 1 << 3 // bit 4
	}
	if !p.Copying {
		val &^= 1 << 4 // bit 5
	}
	if !p.Annotating {
		val &^= 1 << 5 // bit 6
	}
	if !p.FillingForms {
		val &^= 1 << 8 // bit 9
	}
	if !p.ContentAccessibility {
		val &^= 1 << 9 // bit 10
	}
	if !p.DocumentAssembly {
		val &^= 1 << 10 // bit 11
	}
	return val
}

// security holds the document's encryption state, fixed for the whole
// document lifetime once constructed.
type security struct {
	version  int // V
	revision int // R
	keyBits  int
	cipher   cipherKind

	fileKey []byte
	perms   int32

	o, u   []byte
	oe, ue []byte
	permsE []byte // R5 only: encrypted Perms entry

	encryptMetadata bool
}

// newSecurity builds the Standard security handler state for a freshly
// authored document: derives the file encryption key and the O/U (and, for
// R5, OE/UE/Perms) dictionary entries.
func newSecurity(profile secProfile, userPwd, ownerPwd string, perm Permissions, fileID1 []byte) (*security, error) {
	if userPwd == "" && ownerPwd == "" {
		return nil, ErrNoPasswordConfigured
	}
	if ownerPwd == "" {
		ownerPwd = userPwd
	}

	sec := &security{
		version:         profile.V,
		revision:        profile.R,
		keyBits:         profile.keyBits,
		cipher:          profile.cipher,
		perms:           permissionsValue(perm, profile.R),
		encryptMetadata: true,
	}

	if profile.R == 5 {
		pwUser, err := prepareR5Password(userPwd)
		if err != nil {
			return nil, err
		}
		pwOwner, err := prepareR5Password(ownerPwd)
		if err != nil {
			return nil, err
		}
		fileKey, err := randomBytes(32)
		if err != nil {
			return nil, err
		}
		U, UE, O, OE, Perms, err := r5Entries(fileKey, pwUser, pwOwner, sec.perms)
		if err != nil {
			return nil, err
		}
		sec.fileKey, sec.u, sec.ue, sec.o, sec.oe, sec.permsE = fileKey, U, UE, O, OE, Perms
		return sec, nil
	}

	paddedUser, err := padPassword(userPwd)
	if err != nil {
		return nil, err
	}
	paddedOwner, err := padPassword(ownerPwd)
	if err != nil {
		return nil, err
	}
	sec.o = computeOwnerEntry(paddedUser, paddedOwner, profile.R, profile.keyBits)
	sec.fileKey = computeFileKey(paddedUser, sec.o, sec.perms, fileID1, profile.R, profile.keyBits)
	sec.u = computeUserEntry(profile.R, sec.fileKey, fileID1)
	return sec, nil
}

// encryptDict builds the /Encrypt dictionary entries for this handler.
func (sec *security) encryptDict() *Dict {
	d := NewDict()
	d.Set("Filter", Name("Standard"))
	d.Set("V", Integer(sec.version))
	d.Set("R", Integer(sec.revision))
	d.Set("O", NewLiteralString(sec.o))
	d.Set("U", NewLiteralString(sec.u))
	d.Set("P", Integer(sec.perms))

	switch sec.version {
	case 1:
		d.Set("Length", Integer(40))
	case 2:
		d.Set("Length", Integer(sec.keyBits))
	case 4:
		d.Set("Length", Integer(128))
		d.Set("StmF", Name("StdCF"))
		d.Set("StrF", Name("StdCF"))
		cf := NewDict()
		std := NewDict()
		std.Set("CFM", Name("AESV2"))
		std.Set("AuthEvent", Name("DocOpen"))
		std.Set("Length", Integer(16))
		cf.Set("StdCF", std)
		d.Set("CF", cf)
	case 5:
		d.Set("Length", Integer(256))
		d.Set("StmF", Name("StdCF"))
		d.Set("StrF", Name("StdCF"))
		cf := NewDict()
		std := NewDict()
		std.Set("CFM", Name("AESV3"))
		std.Set("AuthEvent", Name("DocOpen"))
		std.Set("Length", Integer(32))
		cf.Set("StdCF", std)
		d.Set("CF", cf)
		d.Set("OE", NewLiteralString(sec.oe))
		d.Set("UE", NewLiteralString(sec.ue))
		d.Set("Perms", NewLiteralString(sec.permsE))
	}
	if !sec.encryptMetadata {
		d.Set("EncryptMetadata", Bool(false))
	}
	return d
}

// objectEncryptor is the per-object encryption transform used by strings
// and streams. It is stateless apart from the fixed file key: every call
// derives (or reuses, for V5) the key for the given object and encrypts
// data fresh, with a fresh IV where applicable.
type objectEncryptor struct {
	sec *security
}

func newObjectEncryptor(sec *security) *objectEncryptor {
	if sec == nil {
		return nil
	}
	return &objectEncryptor{sec: sec}
}

// encrypt transforms data for storage in the given indirect object, for
// security handler versions 1, 2, 4 and 5.
func (oe *objectEncryptor) encrypt(ref Reference, data []byte) ([]byte, error) {
	sec := oe.sec
	switch sec.version {
	case 1, 2:
		if len(data) == 0 {
			return data, nil
		}
		key := objectKeyV124(sec.fileKey, ref.Number, ref.Generation, sec.version)
		return rc4Crypt(key, data), nil
	case 4:
		key := objectKeyV124(sec.fileKey, ref.Number, ref.Generation, sec.version)
		iv, err := randomBytes(16)
		if err != nil {
			return nil, err
		}
		ct := aesCBCEncryptPKCS7(key, iv, data)
		return append(iv, ct...), nil
	case 5:
		iv, err := randomBytes(16)
		if err != nil {
			return nil, err
		}
		ct := aesCBCEncryptPKCS7(sec.fileKey, iv, data)
		return append(iv, ct...), nil
	default:
		return data, nil
	}
}
