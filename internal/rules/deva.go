package rules

import "sort"

// Devanagari consonants carry an inherent "a". Matra and virama
// combinations are generated from the consonant table: क -> "ka",
// क+ि -> "ki", क+् -> "k".

var devaVowels = map[string]string{
	"अ": "a", "आ": "aa", "इ": "i", "ई": "ii", "उ": "u", "ऊ": "uu",
	"ऋ": "ri", "ए": "e", "ऐ": "ai", "ओ": "o", "औ": "au",
}

var devaConsonants = map[string]string{
	"क": "k", "ख": "kh", "ग": "g", "घ": "gh", "ङ": "ng",
	"च": "ch", "छ": "chh", "ज": "j", "झ": "jh", "ञ": "ny",
	"ट": "t", "ठ": "th", "ड": "d", "ढ": "dh", "ण": "n",
	"त": "t", "थ": "th", "द": "d", "ध": "dh", "न": "n",
	"प": "p", "फ": "ph", "ब": "b", "भ": "bh", "म": "m",
	"य": "y", "र": "r", "ल": "l", "व": "v",
	"श": "sh", "ष": "sh", "स": "s", "ह": "h",
}

var devaMatras = map[string]string{
	"ा": "aa", "ि": "i", "ी": "ii", "ु": "u",
	"ू": "uu", "ृ": "ri", "े": "e", "ै": "ai",
	"ो": "o", "ौ": "au",
}

const devaVirama = '्'

func (s *Store) loadDevanagari() {
	s.addMap("", TypeLetter, PrioLetter, devaVowels)

	matraKeys := make([]string, 0, len(devaMatras))
	for k := range devaMatras {
		matraKeys = append(matraKeys, k)
	}
	sort.Strings(matraKeys)

	combos := make(map[string]string, len(devaConsonants)*(len(devaMatras)+2))
	for c, base := range devaConsonants {
		combos[c] = base + "a"
		combos[c+string(devaVirama)] = base
		for _, m := range matraKeys {
			combos[c+m] = base + devaMatras[m]
		}
	}
	s.addMap("", TypeLetter, PrioLetter, combos)

	// Signs and stray combining marks outside a consonant cluster.
	s.addMap("", TypeLetter, prioLow, map[string]string{
		"ं": "n", // anusvara
		"ः": "h", // visarga
		"ँ": "n", // candrabindu
		string(devaVirama): "",
	})
	s.addMap("", TypeLetter, prioLow, devaMatras)
}
