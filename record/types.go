package record

// typeTable maps SNID type codes to type names and, per subtype code, to a
// subtype name. A subtype entry may override the type name.
var typeTable = map[int]struct {
	name     string
	subtypes map[int][2]string
}{
	1: {"Ia", map[int][2]string{
		2: {"", "norm"}, 3: {"", "91T"}, 4: {"", "91bg"}, 5: {"", "csm"},
		6: {"", "pec"}, 7: {"", "99aa"}, 8: {"", "02cx"},
	}},
	2: {"Ib", map[int][2]string{
		2: {"", "norm"}, 3: {"", "pec"}, 4: {"IIb", ""}, 5: {"", "Ibn"}, 6: {"", "Ca"},
	}},
	3: {"Ic", map[int][2]string{
		2: {"", "norm"}, 3: {"", "pec"}, 4: {"IcBL", ""}, 5: {"", "SL"},
	}},
	4: {"II", map[int][2]string{
		2: {"", "P"}, 3: {"", "pec"}, 4: {"", "n"}, 5: {"", "L"},
	}},
	5: {"", map[int][2]string{
		1: {"NotSN", ""}, 2: {"AGN", ""}, 3: {"Gal", ""}, 4: {"LBV", ""},
		5: {"M-star", ""}, 6: {"QSO", ""}, 7: {"C-star", ""},
	}},
}

// TypeNames converts SNID type and subtype codes to names, e.g. (1, 3) to
// ("Ia", "91T"). Unknown codes yield empty names.
func TypeNames(typeInt, subTypeInt int) (typ, subtype string) {
	entry, ok := typeTable[typeInt]
	if !ok {
		return "", ""
	}
	typ = entry.name
	if sub, ok := entry.subtypes[subTypeInt]; ok {
		if sub[0] != "" {
			typ = sub[0]
		}
		subtype = sub[1]
	}
	return typ, subtype
}
