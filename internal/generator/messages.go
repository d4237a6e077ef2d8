package generator

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/huimingz/commitkit/internal/classifier"
	"github.com/huimingz/commitkit/internal/taxonomy"
)

var (
	// keywordStopWords are dropped from the classifier strategy keywords
	keywordStopWords = stopSet("the", "a", "an", "in", "to", "of")

	// themeStopWords are dropped before the thematic ranking
	themeStopWords = stopSet("the", "a", "an", "in", "to", "of", "and", "or", "for", "with", "on", "at")

	categoryTypes = map[taxonomy.FileCategory]taxonomy.CommitType{
		taxonomy.CategoryCode:   taxonomy.Feat,
		taxonomy.CategoryDocs:   taxonomy.Docs,
		taxonomy.CategoryTest:   taxonomy.Test,
		taxonomy.CategoryStyle:  taxonomy.Style,
		taxonomy.CategoryConfig: taxonomy.Chore,
		taxonomy.CategoryOther:  taxonomy.Chore,
	}

	categoryNouns = map[taxonomy.FileCategory]string{
		taxonomy.CategoryCode:   "funcionalidad",
		taxonomy.CategoryDocs:   "documentación",
		taxonomy.CategoryTest:   "pruebas",
		taxonomy.CategoryStyle:  "estilos",
		taxonomy.CategoryConfig: "configuración",
	}

	fallbackTypes = []taxonomy.CommitType{taxonomy.Feat, taxonomy.Refactor, taxonomy.Chore}

	actionVerbs = []string{"actualiza", "mejora", "modifica", "optimiza", "implementa", "refactoriza"}
)

type action struct {
	Name     string
	Type     taxonomy.CommitType
	Keywords []string
}

// actions are checked in order, first match wins
var actions = []action{
	{Name: "add", Type: taxonomy.Feat, Keywords: []string{"agregar", "añadir", "crear", "implementar", "nuevo"}},
	{Name: "fix", Type: taxonomy.Fix, Keywords: []string{"arreglar", "corregir", "solucionar", "reparar"}},
	{Name: "update", Type: taxonomy.Chore, Keywords: []string{"actualizar", "mejorar", "modificar", "cambiar"}},
	{Name: "remove", Type: taxonomy.Refactor, Keywords: []string{"eliminar", "quitar", "borrar", "remover"}},
	{Name: "refactor", Type: taxonomy.Refactor, Keywords: []string{"refactorizar", "reestructurar", "simplificar"}},
}

func stopSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// classifierMessage consults the model when the change text carries enough
// signal, and otherwise infers the type from the branch name and the
// dominant file category
func classifierMessage(c Context) string {
	if utf8.RuneCountInString(c.ChangeText) < MinSignalLength {
		commitType, ok := taxonomy.MatchSubstring(c.Branch)
		if !ok {
			commitType = taxonomy.Chore
		}
		if commitType == taxonomy.Chore {
			switch c.Dominant {
			case taxonomy.CategoryCode:
				commitType = taxonomy.Feat
			case taxonomy.CategoryDocs:
				commitType = taxonomy.Docs
			case taxonomy.CategoryTest:
				commitType = taxonomy.Test
			case taxonomy.CategoryStyle:
				commitType = taxonomy.Style
			}
		}
		return fmt.Sprintf("%s: cambios relacionados con %s", commitType, c.firstFile("cambios"))
	}

	predicted := c.Model.Predict(c.ChangeText)

	var keywords []string
	ranked := rank(classifier.Words(c.ChangeText))
	for _, item := range ranked[:min(3, len(ranked))] {
		if !keywordStopWords[item.Key] {
			keywords = append(keywords, item.Key)
		}
	}

	if len(keywords) > 0 {
		return fmt.Sprintf("%s: %s en %s", predicted, strings.Join(keywords, " y "), c.firstFile("archivos"))
	}
	return fmt.Sprintf("%s: actualización de %s", predicted, c.firstFile("archivos"))
}

func fileTypeMessage(c Context) string {
	commitType, ok := categoryTypes[c.Dominant]
	if !ok {
		commitType = taxonomy.Chore
	}

	if len(c.Files) == 1 {
		return fmt.Sprintf("%s: modificación de %s", commitType, taxonomy.BaseName(c.Files[0]))
	}

	var extensions []string
	for _, f := range c.Files {
		if ext := taxonomy.SplitExt(f); ext != "" {
			extensions = append(extensions, ext)
		}
	}

	if ext := mostCommon(extensions, ""); ext != "" {
		return fmt.Sprintf("%s: cambios en %d archivos %s", commitType, len(c.Files), ext)
	}
	return fmt.Sprintf("%s: actualización de múltiples archivos (%d)", commitType, len(c.Files))
}

// thematicMessage picks words from the middle third of the frequency
// ranking, skipping both boilerplate and one-off words
func thematicMessage(c Context) string {
	var filtered []string
	for _, w := range classifier.Words(c.ChangeText) {
		if !themeStopWords[w] && utf8.RuneCountInString(w) > 3 {
			filtered = append(filtered, w)
		}
	}

	file := c.firstFile("proyecto")

	if len(filtered) > 0 {
		ranked := rank(filtered)
		n := len(ranked)
		var middle []string
		for _, item := range ranked[n/3 : 2*n/3] {
			middle = append(middle, item.Key)
		}

		if len(middle) > 0 {
			words := c.sample(middle, 2)
			commitType, ok := taxonomy.MatchTokens(filtered)
			if !ok {
				commitType = taxonomy.Chore
			}
			return fmt.Sprintf("%s: %s en %s", commitType, strings.Join(words, " con "), file)
		}
	}

	commitType := fallbackTypes[c.intN(len(fallbackTypes))]
	return fmt.Sprintf("%s: mejoras en %s", commitType, file)
}

func descriptiveMessage(c Context) string {
	words := make(map[string]bool)
	for _, w := range classifier.Words(c.ChangeText) {
		words[w] = true
	}

	chosen := action{Name: "update", Type: taxonomy.Chore}
	for _, a := range actions {
		if containsAny(words, a.Keywords) {
			chosen = a
			break
		}
	}

	noun, ok := categoryNouns[c.Dominant]
	if !ok {
		noun = "contenido"
	}

	return fmt.Sprintf("%s: %s %s en %s", chosen.Type, chosen.Name, noun, c.firstFile("proyecto"))
}

func actionVerbMessage(c Context) string {
	verb := actionVerbs[c.intN(len(actionVerbs))]

	var components []string
	for _, f := range c.Files {
		parts := strings.Split(filepath.ToSlash(f), "/")
		if len(parts) > 1 {
			components = append(components, parts[len(parts)-2])
		}
	}

	return fmt.Sprintf("%s %s en %s", verb, mostCommon(components, "componente"), c.firstFile("proyecto"))
}

func containsAny(set map[string]bool, keys []string) bool {
	for _, k := range keys {
		if set[k] {
			return true
		}
	}
	return false
}
