package dealer

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// templateKey selects a message set. An empty archetype is the shared fallback.
type templateKey struct {
	archetype domain.Archetype
	kind      domain.OutcomeKind
}

// messageVars fills the {{...}} placeholders of a template
type messageVars struct {
	worker   string
	customer string
	channel  string
	grams    int
	revenue  int
	mult     float64
}

var titleCaser = cases.Title(language.English)

var customers = []string{
	"Big Mike", "Jules", "Nadia", "Skinny Pete", "Marlo", "Rosa",
	"Tommy Two-Times", "Dee", "Professor", "Lil Kev", "Ines", "Old Sal",
}

var templates = map[templateKey][]string{
	{"", domain.OutcomeSale}: {
		"{{worker}} moved {{grams}}g to {{customer}} via {{channel}} for {{revenue}} coins",
		"{{customer}} took {{grams}}g off {{worker}}'s hands. {{revenue}} coins",
	},
	{"", domain.OutcomeScam}: {
		"{{worker}} sold oregano to a tourist and pocketed {{revenue}} coins",
	},
	{"", domain.OutcomeMeeting}: {
		"{{worker}} met {{customer}} to talk about future business",
		"{{worker}} had coffee with {{customer}}. Nothing changed hands",
	},
	{"", domain.OutcomeWaiting}: {
		"{{worker}} waited on the corner but nobody showed",
		"{{worker}} is waiting for a buyer",
	},
	{"", domain.OutcomeRandom}: {
		"{{worker}} got into an argument about pizza toppings",
		"{{worker}} spent the afternoon feeding pigeons",
		"{{worker}} found a lost dog and returned it",
	},
	{"", domain.OutcomeKill}: {
		"{{worker}} heard shots two blocks over and laid low",
	},
	{"", domain.OutcomeDrugs}: {
		"{{worker}} sampled the product and feels unstoppable (x{{mult}} sales for a minute)",
	},
	{"", domain.OutcomeViolence}: {
		"{{worker}} shook down a rival crew for {{revenue}} coins",
	},
	{"", domain.OutcomeRobbery}: {
		"{{worker}} hit a stash house and came back with {{revenue}} coins",
	},

	{domain.ArchetypeRunner, domain.OutcomeSale}: {
		"{{worker}} biked {{grams}}g over to {{customer}} and got {{revenue}} coins",
	},
	{domain.ArchetypeRunner, domain.OutcomeScam}: {
		"{{worker}} shorted a college kid and kept {{revenue}} coins",
	},
	{domain.ArchetypeGangster, domain.OutcomeSale}: {
		"{{worker}} leaned on {{customer}} to take {{grams}}g for {{revenue}} coins",
	},
	{domain.ArchetypeGangster, domain.OutcomeKill}: {
		"{{worker}} settled a score. The streets are quiet tonight",
	},
	{domain.ArchetypeGangster, domain.OutcomeScam}: {
		"{{worker}} ran a fake protection racket for {{revenue}} coins",
	},
	{domain.ArchetypeCartel, domain.OutcomeSale}: {
		"{{worker}} shipped {{grams}}g through {{channel}} to {{customer}}. {{revenue}} coins wired",
	},
	{domain.ArchetypeCartel, domain.OutcomeKill}: {
		"{{worker}} made a rival supplier disappear",
	},
	{domain.ArchetypeCartel, domain.OutcomeScam}: {
		"{{worker}} laundered a bad shipment and cleared {{revenue}} coins",
	},
}

// Templates returns the message set for an archetype and outcome, falling
// back to the shared set
func Templates(a domain.Archetype, kind domain.OutcomeKind) []string {
	if set, ok := templates[templateKey{a, kind}]; ok {
		return set
	}
	return templates[templateKey{"", kind}]
}

func (e *Engine) vars(w *domain.Worker) messageVars {
	name := w.Name
	if name == "" {
		name = w.ID
	}
	return messageVars{worker: titleCaser.String(name)}
}

func (e *Engine) customer() string {
	return customers[e.rng.Intn(len(customers))]
}

func (e *Engine) message(a domain.Archetype, kind domain.OutcomeKind, v messageVars) string {
	set := Templates(a, kind)
	if len(set) == 0 {
		return v.worker + " is out on the street"
	}
	return render(set[e.rng.Intn(len(set))], v)
}

func render(tmpl string, v messageVars) string {
	return strings.NewReplacer(
		"{{worker}}", v.worker,
		"{{customer}}", v.customer,
		"{{channel}}", v.channel,
		"{{grams}}", strconv.Itoa(v.grams),
		"{{revenue}}", strconv.Itoa(v.revenue),
		"{{mult}}", fmt.Sprintf("%.2f", v.mult),
	).Replace(tmpl)
}
