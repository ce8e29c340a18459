package extract

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/zawlinnaung/slip-tracker/constants"
	"github.com/zawlinnaung/slip-tracker/internal/common"
)

// RuleSet holds the label synonyms recognized per field. Matching is
// case-sensitive on the label token, mirroring how real slips print labels.
type RuleSet struct {
	synonyms map[constants.FieldKind][]string
}

// DefaultRuleSet returns the built-in synonym sets observed on payment slips
// from the common wallet apps.
func DefaultRuleSet() *RuleSet {
	return &RuleSet{synonyms: map[constants.FieldKind][]string{
		constants.FieldDate:     {"Date and Time", "Transaction Date", "Date"},
		constants.FieldTime:     {"Time"},
		constants.FieldNumber:   {"Transaction ID", "Transaction No.", "Transaction No", "Transaction. No.", "Reference ID"},
		constants.FieldType:     {"Transaction Type", "Type"},
		constants.FieldAmount:   {"Total Amount", "Amount"},
		constants.FieldSender:   {"From", "Sender Name", "Send From"},
		constants.FieldReceiver: {"To", "Receiver Name", "Send To"},
		constants.FieldNote:     {"Notes", "Purpose"},
	}}
}

// Synonyms returns the label synonyms for kind.
func (rs *RuleSet) Synonyms(kind constants.FieldKind) []string {
	return rs.synonyms[kind]
}

// rulesetFile is the on-disk shape for synonym overrides.
type rulesetFile struct {
	Synonyms map[string][]string `json:"synonyms"`
}

// LoadRuleSet reads a synonym-override file and merges it over the defaults.
// Overrides replace a field's synonym list wholesale; fields not named keep
// their built-in synonyms.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read ruleset")
	}
	if err := ValidateRulesetJSON(data); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidRuleset, err)
	}
	var f rulesetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidRuleset, err)
	}
	rs := DefaultRuleSet()
	for field, labels := range f.Synonyms {
		rs.synonyms[constants.FieldKind(field)] = labels
	}
	return rs, nil
}
