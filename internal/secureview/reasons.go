package secureview

// Reason : закрытый набор причин подозрительной активности. Журнал принимает
// только эти значения — произвольные строки с клиента отклоняются.
type Reason string

const (
	ReasonPrintScreen        Reason = "print-screen"
	ReasonSaveShortcut       Reason = "save-shortcut"
	ReasonPrintShortcut      Reason = "print-shortcut"
	ReasonDevToolsShortcut   Reason = "devtools-shortcut"
	ReasonDevToolsKey        Reason = "devtools-key"
	ReasonViewSourceShortcut Reason = "view-source-shortcut"
	ReasonVisibilityLost     Reason = "visibility-lost"
)

var validReasons = map[Reason]struct{}{
	ReasonPrintScreen:        {},
	ReasonSaveShortcut:       {},
	ReasonPrintShortcut:      {},
	ReasonDevToolsShortcut:   {},
	ReasonDevToolsKey:        {},
	ReasonViewSourceShortcut: {},
	ReasonVisibilityLost:     {},
}

func ValidReason(reason string) bool {
	_, ok := validReasons[Reason(reason)]
	return ok
}

// KeyCombo : нажатие клавиши с модификаторами, как его видит поверхность просмотра
type KeyCombo struct {
	Key   string
	Ctrl  bool
	Shift bool
}

// classifyKey : перехватываемые комбинации захвата/инспекции.
// Всё остальное пропускается без событий.
func classifyKey(combo KeyCombo) (Reason, bool) {
	switch {
	case combo.Key == "PrintScreen":
		return ReasonPrintScreen, true
	case combo.Ctrl && !combo.Shift && (combo.Key == "s" || combo.Key == "S"):
		return ReasonSaveShortcut, true
	case combo.Ctrl && !combo.Shift && (combo.Key == "p" || combo.Key == "P"):
		return ReasonPrintShortcut, true
	case combo.Ctrl && combo.Shift && (combo.Key == "i" || combo.Key == "I"):
		return ReasonDevToolsShortcut, true
	case combo.Key == "F12":
		return ReasonDevToolsKey, true
	case combo.Ctrl && !combo.Shift && (combo.Key == "u" || combo.Key == "U"):
		return ReasonViewSourceShortcut, true
	}
	return "", false
}
