package landscape

// Digit glyph indices beyond 0-9.
const (
	DigitPlus  = 10
	DigitMinus = 11
	DigitColon = 12
)

const maxMagnitude = 999

// DrawInt draws n with its baseline at y and returns the advance width.
//
// The sign glyph is drawn when showSign is set or n is negative. Hundreds
// are shown when nonzero or minDigits >= 3; tens when nonzero, after a
// nonzero hundreds digit, or minDigits >= 2; ones always. A "1" in the tens
// or ones place pulls the cursor back one pixel before drawing, unless it is
// the first glyph drawn, and every digit other than "1" is followed by a one
// pixel gap.
func (p *Painter) DrawInt(n, x, y int, showSign bool, minDigits int) (int, error) {
	sign := DigitPlus
	if n < 0 {
		sign = DigitMinus
		n = -n
	}
	n = min(n, maxMagnitude)
	hundreds, tens, ones := n/100, n%100/10, n%10

	dx := 0
	draw := func(index int) error {
		w, err := p.Draw(CategoryDigit, index, x+dx, y, false)
		dx += w
		return err
	}

	if showSign || sign == DigitMinus {
		if err := draw(sign); err != nil {
			return dx, err
		}
		dx++
	}
	if hundreds != 0 || minDigits >= 3 {
		if err := draw(hundreds); err != nil {
			return dx, err
		}
		if hundreds != 1 {
			dx++
		}
	}
	if tens != 0 || hundreds != 0 || minDigits >= 2 {
		if err := kernedDigit(tens, &dx, draw); err != nil {
			return dx, err
		}
	}
	if err := kernedDigit(ones, &dx, draw); err != nil {
		return dx, err
	}
	return dx, nil
}

func kernedDigit(d int, dx *int, draw func(int) error) error {
	if d == 1 && *dx > 0 {
		*dx--
	}
	if err := draw(d); err != nil {
		return err
	}
	if d != 1 {
		*dx++
	}
	return nil
}

// DrawClock draws "HH:MM" with its baseline at y and returns the advance width.
func (p *Painter) DrawClock(x, y, hours, minutes int) (int, error) {
	dx, err := p.DrawInt(hours, x, y, false, 2)
	if err != nil {
		return dx, err
	}
	w, err := p.Draw(CategoryDigit, DigitColon, x+dx, y, false)
	if err != nil {
		return dx, err
	}
	dx += w
	m, err := p.DrawInt(minutes, x+dx, y, false, 2)
	return dx + m, err
}
