// Copyright © 2021 Io FinNet Group, Inc.

package attack

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	big "github.com/iofinnet/zdrsa/common/int"
)

// The JSON names match the keys of the challenge data file. Unknown keys are ignored.
type (
	Level1Params struct {
		N       *big.Int `json:"n"`
		E       *big.Int `json:"e"`
		Message *string  `json:"message"`
	}

	Level2Params struct {
		Ciphertext *big.Int `json:"ciphertext"`
		D          *big.Int `json:"d"`
		N          *big.Int `json:"n"`
	}

	Level3Params struct {
		Key string `json:"key"`
	}

	Level4Params struct {
		Key        string   `json:"key"`
		Ciphertext *big.Int `json:"ciphertext"`
	}

	Level5Params struct {
		Ciphertext *big.Int `json:"ciphertext"`
		P          *big.Int `json:"p"`
		Q          *big.Int `json:"q"`
		DQ         *big.Int `json:"dq"`
		DP         *big.Int `json:"dp"`
		QInv       *big.Int `json:"qinv"`
	}

	Level6Params struct {
		E          *big.Int `json:"e"`
		P          *big.Int `json:"p"`
		Q          *big.Int `json:"q"`
		Ciphertext *big.Int `json:"ciphertext"`
	}

	Level7Params struct {
		N          *big.Int `json:"n"`
		E          *big.Int `json:"e"`
		Ciphertext *big.Int `json:"ciphertext"`
		// Factor optionally overrides the solver's known small factor.
		Factor *big.Int `json:"factor,omitempty"`
	}

	Level8Params struct {
		Ciphertext *big.Int `json:"ciphertext"`
		E          *big.Int `json:"e"`
		N          *big.Int `json:"n"`
	}

	Level9Params struct {
		E  *big.Int `json:"e"`
		N1 *big.Int `json:"n1"`
		C1 *big.Int `json:"c1"`
		N2 *big.Int `json:"n2"`
		C2 *big.Int `json:"c2"`
		N3 *big.Int `json:"n3"`
		C3 *big.Int `json:"c3"`
	}

	Level10Params struct {
		N1 *big.Int `json:"n1"`
		N2 *big.Int `json:"n2"`
		E1 *big.Int `json:"e1"`
		E2 *big.Int `json:"e2"`
		C1 *big.Int `json:"c1"`
		C2 *big.Int `json:"c2"`
	}

	Level11Params struct {
		N  *big.Int `json:"n"`
		E  *big.Int `json:"e"`
		C  *big.Int `json:"c"`
		DP *big.Int `json:"dp"`
	}

	field struct {
		name string
		set  bool
	}
)

func (*Level1Params) Level() Level  { return TextbookEncrypt }
func (*Level2Params) Level() Level  { return TextbookDecrypt }
func (*Level3Params) Level() Level  { return KeyExtraction }
func (*Level4Params) Level() Level  { return KeyDecrypt }
func (*Level5Params) Level() Level  { return CRTDecrypt }
func (*Level6Params) Level() Level  { return FactorsDecrypt }
func (*Level7Params) Level() Level  { return SmallFactor }
func (*Level8Params) Level() Level  { return SmallExponent }
func (*Level9Params) Level() Level  { return Broadcast }
func (*Level10Params) Level() Level { return CommonModulus }
func (*Level11Params) Level() Level { return LeakedDP }

func (p *Level1Params) Validate() error {
	return required(num("n", p.N), num("e", p.E), field{"message", p.Message != nil})
}

func (p *Level2Params) Validate() error {
	return required(num("ciphertext", p.Ciphertext), num("d", p.D), num("n", p.N))
}

func (p *Level3Params) Validate() error {
	return required(field{"key", p.Key != ""})
}

func (p *Level4Params) Validate() error {
	return required(field{"key", p.Key != ""}, num("ciphertext", p.Ciphertext))
}

func (p *Level5Params) Validate() error {
	return required(num("ciphertext", p.Ciphertext), num("p", p.P), num("q", p.Q),
		num("dq", p.DQ), num("dp", p.DP), num("qinv", p.QInv))
}

func (p *Level6Params) Validate() error {
	return required(num("e", p.E), num("p", p.P), num("q", p.Q), num("ciphertext", p.Ciphertext))
}

func (p *Level7Params) Validate() error {
	return required(num("n", p.N), num("e", p.E), num("ciphertext", p.Ciphertext))
}

func (p *Level8Params) Validate() error {
	return required(num("ciphertext", p.Ciphertext), num("e", p.E), num("n", p.N))
}

func (p *Level9Params) Validate() error {
	return required(num("e", p.E), num("n1", p.N1), num("c1", p.C1), num("n2", p.N2),
		num("c2", p.C2), num("n3", p.N3), num("c3", p.C3))
}

func (p *Level10Params) Validate() error {
	return required(num("n1", p.N1), num("n2", p.N2), num("e1", p.E1), num("e2", p.E2),
		num("c1", p.C1), num("c2", p.C2))
}

func (p *Level11Params) Validate() error {
	return required(num("n", p.N), num("e", p.E), num("c", p.C), num("dp", p.DP))
}

// NewParams returns an empty record for level l, ready to be decoded into.
func NewParams(l Level) (Params, error) {
	switch l {
	case TextbookEncrypt:
		return new(Level1Params), nil
	case TextbookDecrypt:
		return new(Level2Params), nil
	case KeyExtraction:
		return new(Level3Params), nil
	case KeyDecrypt:
		return new(Level4Params), nil
	case CRTDecrypt:
		return new(Level5Params), nil
	case FactorsDecrypt:
		return new(Level6Params), nil
	case SmallFactor:
		return new(Level7Params), nil
	case SmallExponent:
		return new(Level8Params), nil
	case Broadcast:
		return new(Level9Params), nil
	case CommonModulus:
		return new(Level10Params), nil
	case LeakedDP:
		return new(Level11Params), nil
	}
	return nil, errors.Wrapf(ErrUnknownLevel, "%d is not between %d and %d", int(l), int(MinLevel), int(MaxLevel))
}

func num(name string, v *big.Int) field {
	return field{name, v != nil}
}

func required(fields ...field) error {
	var merr *multierror.Error
	for _, f := range fields {
		if !f.set {
			merr = multierror.Append(merr, errors.Wrapf(ErrMissingField, "%q", f.name))
		}
	}
	return merr.ErrorOrNil()
}
