package homoglyph

// latinConfusables lists, for ASCII letters, characters that render nearly
// identically in common fonts. Entries outside Latin and Cyrillic are kept here
// on purpose; Default filters them out.
func latinConfusables() map[rune][]rune {
	return map[rune][]rune{
		'a': {'а', 'ɑ', 'α'},
		'b': {'Ь', 'Ƅ'},
		'c': {'с', 'ᴄ', 'ϲ'},
		'd': {'ԁ', 'ɗ'},
		'e': {'е', 'ҽ', 'ε'},
		'g': {'ɡ', 'ԍ'},
		'h': {'һ'},
		'i': {'і', 'ɩ', 'ι'},
		'j': {'ј', 'ϳ'},
		'k': {'ᴋ', 'κ'},
		'l': {'ӏ', 'ǀ'},
		'o': {'о', 'ᴏ', 'ο'},
		'p': {'р', 'ᴘ', 'ρ'},
		'q': {'ԛ'},
		'r': {'г'},
		's': {'ѕ', 'ꜱ'},
		'u': {'ᴜ', 'υ'},
		'v': {'ѵ', 'ᴠ', 'ν'},
		'w': {'ԝ', 'ᴡ'},
		'x': {'х', 'χ'},
		'y': {'у', 'ү', 'γ'},
		'z': {'ᴢ'},

		'A': {'А', 'Α'},
		'B': {'В', 'Β'},
		'C': {'С'},
		'E': {'Е', 'Ε'},
		'H': {'Н', 'Η'},
		'I': {'І', 'Ι'},
		'J': {'Ј'},
		'K': {'К', 'Κ'},
		'M': {'М', 'Μ'},
		'N': {'Ν'},
		'O': {'О', 'Ο'},
		'P': {'Р', 'Ρ'},
		'S': {'Ѕ'},
		'T': {'Т', 'Τ'},
		'X': {'Х', 'Χ'},
		'Y': {'Ү', 'Υ'},
		'Z': {'Ζ'},
	}
}
