package scoring

// MaxComboIndex is the last combo column of the attack tables. Longer combos
// reuse it.
const MaxComboIndex = 20

type attackTable [MaxComboIndex + 1]int

var (
	singleAttack = attackTable{0, 0, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3}
	doubleAttack = attackTable{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 6}
	tripleAttack = attackTable{2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12}
	tetrisAttack = attackTable{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24}
	tstAttack    = attackTable{6, 7, 9, 10, 12, 13, 15, 16, 18, 19, 21, 22, 24, 25, 27, 28, 30, 31, 33, 34, 36}

	b2bTetrisAttack = attackTable{5, 6, 7, 8, 10, 11, 12, 13, 15, 16, 17, 18, 20, 21, 22, 23, 25, 26, 27, 28, 30}
	b2bTSSAttack    = attackTable{3, 3, 4, 5, 6, 6, 7, 8, 9, 9, 10, 11, 12, 12, 13, 14, 15, 15, 16, 17, 18}
	b2bTSTAttack    = attackTable{7, 8, 10, 12, 14, 15, 17, 19, 21, 22, 24, 26, 28, 29, 31, 33, 35, 36, 38, 40, 42}
)

// Attack returns the garbage rows a clear sends. b2b is whether the
// back-to-back bonus applied to this clear and combo is the combo after it.
func Attack(st ScoreType, b2b bool, combo int) int {
	if combo < 0 {
		combo = 0
	}
	i := min(combo, MaxComboIndex)

	if b2b {
		switch st {
		case Tetris, TSpinDouble:
			return b2bTetrisAttack[i]
		case TSpinMiniSingle:
			return doubleAttack[i]
		case TSpinSingle:
			return b2bTSSAttack[i]
		case TSpinTriple:
			return b2bTSTAttack[i]
		}
	}

	switch st {
	case Single, TSpinMiniSingle:
		return singleAttack[i]
	case Double:
		return doubleAttack[i]
	case Triple, TSpinSingle:
		return tripleAttack[i]
	case Tetris, TSpinDouble:
		return tetrisAttack[i]
	case TSpinTriple:
		return tstAttack[i]
	}
	return 0
}
