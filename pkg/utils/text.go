package utils

import "strings"

// collapseWhitespace comprime espaçamentos estranhos em um único espaço
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeCategory coloca cada palavra em Title Case:
// "men's clothing" -> "Men's Clothing"
func NormalizeCategory(raw string) string {
	words := strings.Split(strings.ToLower(collapseWhitespace(raw)), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// NormalizeText capitaliza a primeira letra de um texto estilo frase
func NormalizeText(raw string) string {
	cleaned := collapseWhitespace(raw)
	if cleaned == "" {
		return cleaned
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}
