package ranges

import "github.com/Veraticus/gto-overlay/internal/model"

func raise(action string, r, c, f int) Entry {
	return Entry{
		Action: action,
		Frequencies: model.Frequencies{
			model.ActionRaise: r,
			model.ActionCall:  c,
			model.ActionFold:  f,
		},
	}
}

// BuiltinEntries returns the default preflop tuning.
func BuiltinEntries() map[Key]Entry {
	rows := map[model.Position]map[HandKey]Entry{
		model.PositionUTG: {
			// Premium pairs
			"AsAh": raise("RAISE 3x", 100, 0, 0),
			"AsAd": raise("RAISE 3x", 100, 0, 0),
			"AsAc": raise("RAISE 3x", 100, 0, 0),
			"KsKh": raise("RAISE 3x", 100, 0, 0),
			"QsQh": raise("RAISE 3x", 100, 0, 0),
			"JsJh": raise("RAISE 3x", 95, 5, 0),
			"TsTh": raise("RAISE 3x", 85, 15, 0),

			// Big broadway
			"AsKs": raise("RAISE 3x", 90, 10, 0),
			"AsKh": raise("RAISE 3x", 75, 20, 5),
			"AsQs": raise("RAISE 3x", 80, 15, 5),
			"AsJs": raise("RAISE 3x", 70, 25, 5),

			DefaultHand: raise("FOLD", 0, 5, 95),
		},
		model.PositionMP: {
			"AsKh":      raise("RAISE 3x", 80, 15, 5),
			"9s9h":      raise("RAISE 3x", 85, 15, 0),
			"AsTs":      raise("RAISE 3x", 65, 30, 5),
			DefaultHand: raise("FOLD", 0, 10, 90),
		},
		model.PositionCO: {
			"AsKh":      raise("RAISE 3x", 85, 10, 5),
			"7s7h":      raise("RAISE 3x", 70, 25, 5),
			"Ah9s":      raise("RAISE 2.5x", 60, 35, 5),
			DefaultHand: raise("FOLD", 0, 15, 85),
		},
		model.PositionBTN: {
			"AsKh":      raise("RAISE 3x", 68, 22, 10),
			"5s5h":      raise("RAISE 2.5x", 65, 30, 5),
			"Kh9s":      raise("RAISE 2.5x", 45, 40, 15),
			DefaultHand: raise("FOLD", 0, 20, 80),
		},
		model.PositionSB: {
			"AsKh":      raise("RAISE 3x", 75, 20, 5),
			DefaultHand: raise("FOLD", 0, 25, 75),
		},
		model.PositionBB: {
			"AsKh":      raise("CALL", 25, 70, 5),
			DefaultHand: raise("CHECK/FOLD", 0, 35, 65),
		},
		model.PositionDefault: {
			DefaultHand: raise("FOLD", 0, 10, 90),
		},
	}

	entries := make(map[Key]Entry)
	for pos, hands := range rows {
		for hand, e := range hands {
			entries[Key{Position: pos, Hand: hand}] = e
		}
	}
	return entries
}

// Builtin returns the validated default table.
func Builtin() (*Table, error) {
	return New(BuiltinEntries())
}
