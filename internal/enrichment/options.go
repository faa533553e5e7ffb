// File: internal/enrichment/options.go
package enrichment

import (
	"strings"
)

// Choice is a single accepted value for an enumerated parameter together with
// the label shown to users.
type Choice struct {
	Code  string
	Label string
}

// GeneIDType identifies the kind of gene identifiers found in the input file.
type GeneIDType string

const (
	GeneIDEnsembl GeneIDType = "E"
	GeneIDSymbol  GeneIDType = "S"
)

// Organism is the short code selecting the species annotation database.
type Organism string

// AdjustMethod is the multiple-testing correction applied to raw p-values.
type AdjustMethod string

// DefaultAdjustMethod is used when no method is given on the command line or in config.
const DefaultAdjustMethod AdjustMethod = "BH"

// DefaultCutoff applies to both the p-value and the q-value threshold.
const DefaultCutoff = 0.05

// The tables below are ordered the way they are presented in help output.
var geneIDTypes = []Choice{
	{Code: "E", Label: "ENSEMBL"},
	{Code: "S", Label: "SYMBOL"},
}

var organisms = []Choice{
	{Code: "mmu", Label: "Mouse"},
	{Code: "hsa", Label: "Human"},
	{Code: "bta", Label: "Cow"},
	{Code: "cfa", Label: "Dog"},
	{Code: "cel", Label: "Worm"},
	{Code: "gga", Label: "Chicken"},
	{Code: "rno", Label: "Rat"},
	{Code: "tae", Label: "Wheat"},
	{Code: "ptr", Label: "Chimpanzee"},
	{Code: "dme", Label: "Fruit Fly"},
	{Code: "dre", Label: "Zebrafish"},
	{Code: "sce", Label: "Yeast"},
	{Code: "gma", Label: "Soybean"},
	{Code: "zma", Label: "Maize"},
	{Code: "ssc", Label: "Pig"},
	{Code: "ath", Label: "Arabidopsis"},
	{Code: "ecb", Label: "Horse"},
	{Code: "oar", Label: "Sheep"},
	{Code: "osa", Label: "Rice"},
}

var adjustMethods = []Choice{
	{Code: "BH", Label: "Benjamini-Hochberg"},
	{Code: "fdr", Label: "False Discovery Rate, equivalent to BH"},
	{Code: "BY", Label: "Benjamini-Yekutieli"},
	{Code: "holm", Label: "Holm-Bonferroni"},
	{Code: "hochberg", Label: "Hochberg"},
	{Code: "hommel", Label: "Hommel"},
	{Code: "bonferroni", Label: "Bonferroni"},
}

// GeneIDTypes returns the accepted gene-ID type codes.
func GeneIDTypes() []Choice { return clone(geneIDTypes) }

// Organisms returns the accepted organism codes.
func Organisms() []Choice { return clone(organisms) }

// AdjustMethods returns the accepted p-value adjustment methods.
func AdjustMethods() []Choice { return clone(adjustMethods) }

// Label returns the human readable name of the gene-ID type, or "" if unknown.
func (g GeneIDType) Label() string { return labelOf(geneIDTypes, string(g)) }

// Label returns the species name for the organism code, or "" if unknown.
func (o Organism) Label() string { return labelOf(organisms, string(o)) }

// Label returns a description of the adjustment method, or "" if unknown.
func (m AdjustMethod) Label() string { return labelOf(adjustMethods, string(m)) }

func clone(in []Choice) []Choice {
	out := make([]Choice, len(in))
	copy(out, in)
	return out
}

func labelOf(choices []Choice, code string) string {
	for _, c := range choices {
		if c.Code == code {
			return c.Label
		}
	}
	return ""
}

// contains is case-sensitive: "hsa" is valid, "HSA" is not.
func contains(choices []Choice, code string) bool {
	for _, c := range choices {
		if c.Code == code {
			return true
		}
	}
	return false
}

// codes renders the accepted values for error and help messages, e.g. "{E, S}".
func codes(choices []Choice) string {
	list := make([]string, 0, len(choices))
	for _, c := range choices {
		list = append(list, c.Code)
	}
	return "{" + strings.Join(list, ", ") + "}"
}
