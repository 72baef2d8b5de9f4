package diagnosis

import (
	"context"
	"math/rand"
	"sync"

	"agrimarket-backend/internal/domain"
)

type diseaseEntry struct {
	name       string
	severity   string
	treatment  string
	prevention string
	symptoms   []string
	causes     []string
}

var diseaseTable = []diseaseEntry{
	{
		name:       "Mildiou",
		severity:   "moderee",
		treatment:  "Appliquer un fongicide a base de cuivre des l'apparition des taches; retirer les feuilles atteintes.",
		prevention: "Espacer les plants, arroser au pied le matin, pratiquer la rotation des cultures.",
		symptoms:   []string{"Taches jaunes sur la face superieure des feuilles", "Duvet blanc-gris sous les feuilles"},
		causes:     []string{"Humidite prolongee", "Mauvaise circulation de l'air"},
	},
	{
		name:       "Striure du mais",
		severity:   "severe",
		treatment:  "Arracher et detruire les plants infectes; traiter contre les cicadelles vectrices.",
		prevention: "Semer tot, utiliser des varietes tolerantes, lutter contre les cicadelles.",
		symptoms:   []string{"Stries jaunes continues le long des nervures", "Croissance ralentie"},
		causes:     []string{"Virus transmis par les cicadelles"},
	},
	{
		name:       "Rouille",
		severity:   "legere",
		treatment:  "Pulveriser un fongicide triazole si l'infestation progresse.",
		prevention: "Choisir des varietes resistantes, eliminer les residus de recolte.",
		symptoms:   []string{"Pustules orange-brun sur les feuilles", "Dessechement premature"},
		causes:     []string{"Spores propagees par le vent", "Rosee matinale persistante"},
	},
	{
		name:       "Anthracnose",
		severity:   "moderee",
		treatment:  "Supprimer les parties atteintes et appliquer un fongicide homologue.",
		prevention: "Semences saines, eviter l'irrigation par aspersion en fin de journee.",
		symptoms:   []string{"Taches brunes deprimees sur fruits et tiges", "Lesions circulaires"},
		causes:     []string{"Champignon favorise par la chaleur humide"},
	},
	{
		name:       "Plante saine",
		severity:   "aucune",
		treatment:  "Aucun traitement necessaire.",
		prevention: "Poursuivre les bonnes pratiques culturales actuelles.",
		symptoms:   []string{"Feuillage uniforme", "Pas de lesion visible"},
		causes:     nil,
	},
}

// mockAnalyzer picks a plausible result from a fixed table. The
// selection carries no inference; only the output shape matters.
type mockAnalyzer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMock(seed int64) Analyzer {
	return &mockAnalyzer{rng: rand.New(rand.NewSource(seed))}
}

func (m *mockAnalyzer) Analyze(ctx context.Context, imageURI string) (*domain.DiagnosisResult, error) {
	m.mu.Lock()
	entry := diseaseTable[m.rng.Intn(len(diseaseTable))]
	confidence := int32(70 + m.rng.Intn(29))
	quality := m.rng.Intn(10) > 1
	m.mu.Unlock()

	return &domain.DiagnosisResult{
		ImageURI:       imageURI,
		Disease:        entry.name,
		Confidence:     confidence,
		Severity:       entry.severity,
		Treatment:      entry.treatment,
		Prevention:     entry.prevention,
		Symptoms:       entry.symptoms,
		Causes:         entry.causes,
		PhotoQualityOK: quality,
	}, nil
}
