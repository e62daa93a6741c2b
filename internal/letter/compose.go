package letter

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/darlands/wayleave-scanner/internal/classify"
)

// letterDateFormat renders dates as "02 January 2006".
const letterDateFormat = "02 January 2006"

// Overrides lets a caller replace extracted fields before composition.
// Zero-valued fields keep the extracted values.
type Overrides struct {
	// Names replaces the extracted full-names string.
	Names string
	// Salutation replaces the derived greeting verbatim.
	Salutation string
	// Address replaces the extracted address.
	Address *AddressRecord
}

// Composer renders extracted information into finished letters.
type Composer struct {
	now    func() time.Time
	logger zerolog.Logger
}

// NewComposer creates a composer using the wall clock.
func NewComposer(logger zerolog.Logger) *Composer {
	return NewComposerWithClock(time.Now, logger)
}

// NewComposerWithClock creates a composer with an injected clock.
func NewComposerWithClock(now func() time.Time, logger zerolog.Logger) *Composer {
	return &Composer{now: now, logger: logger}
}

// Compose renders the agreement letter for the given dialect. pageCount
// is the agreement document's page count, from which the signing page
// is derived.
func (c *Composer) Compose(info *ExtractedInfo, dialect classify.WayleaveType, pageCount int, ov Overrides) (*Artifact, error) {
	var template string
	var signPageNumber int
	switch dialect {
	case classify.WayleaveAnnual:
		template = annualLetterTemplate
		signPageNumber = pageCount - 1
	case classify.WayleaveFifteenYear:
		template = fifteenYearLetterTemplate
		signPageNumber = pageCount
	default:
		return nil, GenerationError("invalid letter type: %s", dialect)
	}

	signPage, ok := OrdinalWord(signPageNumber)
	if !ok {
		return nil, GenerationError("cannot derive signing page from page count %d", pageCount)
	}

	names, salutation, address, err := c.resolve(info, ov)
	if err != nil {
		return nil, err
	}

	header, derivedSalutation, err := FormatNames(names, ov.Salutation)
	if err != nil {
		return nil, err
	}
	if salutation == "" {
		salutation = derivedSalutation
	}

	block, err := FormatAddress(address)
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf(template,
		c.now().Format(letterDateFormat),
		header+"\n"+block,
		salutation,
		signPage,
	)

	c.logger.Info().
		Stringer("dialect", dialect).
		Str("sign_page", signPage).
		Msg("composed letter")

	return &Artifact{
		Content:           content,
		SuggestedFilename: GenerateFilename(address),
	}, nil
}

// ComposeCompletion renders the closing letter that accompanies the
// countersigned agreement and cheque. No signing page is involved.
func (c *Composer) ComposeCompletion(info *ExtractedInfo, ov Overrides) (*Artifact, error) {
	names, salutation, address, err := c.resolve(info, ov)
	if err != nil {
		return nil, err
	}

	header, derivedSalutation, err := FormatNames(names, ov.Salutation)
	if err != nil {
		return nil, err
	}
	if salutation == "" {
		salutation = derivedSalutation
	}

	block, err := FormatAddress(address)
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf(completionLetterTemplate,
		c.now().Format(letterDateFormat),
		header+"\n"+block,
		salutation,
	)

	c.logger.Info().Msg("composed completion letter")

	return &Artifact{
		Content:           content,
		SuggestedFilename: GenerateFilename(address),
	}, nil
}

// resolve applies overrides on top of the extracted fields. The
// salutation chain is override, then extracted, then derived from the
// names during formatting.
func (c *Composer) resolve(info *ExtractedInfo, ov Overrides) (names, salutation string, address AddressRecord, err error) {
	if info == nil {
		return "", "", AddressRecord{}, GenerationError("no extracted information to compose from")
	}

	names = info.FullNames
	if ov.Names != "" {
		names = ov.Names
	}

	salutation = ov.Salutation
	if salutation == "" {
		salutation = info.SalutationName
	}

	address = info.Address
	if ov.Address != nil {
		address = *ov.Address
	}
	return names, salutation, address, nil
}
