// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tmr

import "github.com/embeddedgo/max78000/reg"

// CNT, CMP, PWM (Tables 19-9 to 19-11)
var (
	Count   = reg.Bits(0, 31, reg.RW, CNT, "CNT").Doc("current timer count, rate depends on the timer mode")
	Compare = reg.Bits(0, 31, reg.RW, CMP, "CMP").Doc("compare value, its use depends on the timer mode")
	Match   = reg.Bits(0, 31, reg.RW, PWM, "PWM").Doc("PWM match value or count captured on a mode event")
)

// INTFL (Table 19-12)
var (
	IRQ_A    = reg.Bit(0, reg.RW1C, INTFL, "IRQ_A").Doc("TimerA interrupt event")
	WRDONE_A = reg.Bit(8, reg.RO, INTFL, "WRDONE_A").Doc("TimerA write done")
	WR_DIS_A = reg.Bit(9, reg.RW, INTFL, "WR_DIS_A").Doc("TimerA write protect in dual timer mode")
	IRQ_B    = reg.Bit(16, reg.RW1C, INTFL, "IRQ_B").Doc("TimerB interrupt event")
	WR_DIS_B = reg.Bit(24, reg.RW, INTFL, "WR_DIS_B").Doc("TimerB write protect in dual timer mode, bits 16-31 of CNT and PWM")
	WRDONE_B = reg.Bit(25, reg.RO, INTFL, "WRDONE_B").Doc("TimerB write done, 0 while a write of CNT/PWM bits 16-31 is in progress")
)

// CTRL0 (Table 19-13)
var (
	MODE_A    = reg.Bits(0, 3, reg.RW, CTRL0, "MODE_A").Doc("TimerA mode select")
	CLKDIV_A  = reg.Bits(4, 7, reg.RW, CTRL0, "CLKDIV_A").Doc("TimerA prescaler select")
	POL_A     = reg.Bit(8, reg.RW, CTRL0, "POL_A").Doc("TimerA polarity")
	PWMSYNC_A = reg.Bit(9, reg.RW, CTRL0, "PWMSYNC_A").Doc("TimerA/TimerB PWM synchronization mode")
	NOLHPOL_A = reg.Bit(10, reg.RW, CTRL0, "NOLHPOL_A").Doc("TimerA PWM output phi A polarity")
	NOLLPOL_A = reg.Bit(11, reg.RW, CTRL0, "NOLLPOL_A").Doc("TimerA PWM output phi A' polarity")
	PWMCKBD_A = reg.Bit(12, reg.RW, CTRL0, "PWMCKBD_A").Doc("TimerA PWM output phi A' disable")
	RST_A     = reg.Bit(13, reg.RW1O, CTRL0, "RST_A").Doc("TimerA reset")
	CLKEN_A   = reg.Bit(14, reg.RW, CTRL0, "CLKEN_A").Doc("TimerA clock enable")
	EN_A      = reg.Bit(15, reg.RW, CTRL0, "EN_A").Doc("TimerA enable")
	MODE_B    = reg.Bits(16, 19, reg.RW, CTRL0, "MODE_B").Doc("TimerB mode select")
	CLKDIV_B  = reg.Bits(20, 23, reg.RW, CTRL0, "CLKDIV_B").Doc("TimerB prescaler select")
	RST_B     = reg.Bit(29, reg.RW1O, CTRL0, "RST_B").Doc("TimerB reset")
	CLKEN_B   = reg.Bit(30, reg.RW, CTRL0, "CLKEN_B").Doc("TimerB clock enable")
	EN_B      = reg.Bit(31, reg.RW, CTRL0, "EN_B").Doc("TimerB enable")
)

// NOLCMP (Table 19-14)
var (
	LO_A = reg.Bits(0, 7, reg.RW, NOLCMP, "LO_A").Doc("non-overlapping low compare 0")
	HI_A = reg.Bits(8, 15, reg.RW, NOLCMP, "HI_A").Doc("non-overlapping high compare 0")
	LO_B = reg.Bits(16, 23, reg.RW, NOLCMP, "LO_B").Doc("non-overlapping low compare 1")
	HI_B = reg.Bits(24, 31, reg.RW, NOLCMP, "HI_B").Doc("non-overlapping high compare 1")
)

// CTRL1 (Table 19-15)
var (
	CLKSEL_A       = reg.Bits(0, 1, reg.RW, CTRL1, "CLKSEL_A").Doc("TimerA clock source")
	CLKENA_A       = reg.Bit(2, reg.RW, CTRL1, "CLKENA_A").Doc("TimerA clock enable")
	CLKRDY_A       = reg.Bit(3, reg.RO, CTRL1, "CLKRDY_A").Doc("TimerA clock ready")
	EVENT_SEL_A    = reg.Bits(4, 6, reg.RW, CTRL1, "EVENT_SEL_A").Doc("TimerA event selection")
	NEGTRIG_A      = reg.Bit(7, reg.RW, CTRL1, "NEGTRIG_A").Doc("TimerA negative edge trigger for event")
	IE_A           = reg.Bit(8, reg.RW, CTRL1, "IE_A").Doc("TimerA interrupt enable")
	CAPEVENT_SEL_A = reg.Bits(9, 10, reg.RW, CTRL1, "CAPEVENT_SEL_A").Doc("TimerA event capture selection")
	SW_CAPEVENT_A  = reg.Bit(11, reg.RW, CTRL1, "SW_CAPEVENT_A").Doc("TimerA software event capture")
	WE_A           = reg.Bit(12, reg.RW, CTRL1, "WE_A").Doc("TimerA wake-up function")
	OUTEN_A        = reg.Bit(13, reg.RW, CTRL1, "OUTEN_A").Doc("output enable")
	OUTBEN_A       = reg.Bit(14, reg.RW, CTRL1, "OUTBEN_A").Doc("output B enable")
	CLKSEL_B       = reg.Bits(16, 17, reg.RW, CTRL1, "CLKSEL_B").Doc("TimerB clock source")
	CLKEN_B_STAT   = reg.Bit(18, reg.RO, CTRL1, "CLKEN_B_STAT").Doc("TimerB clock enable status")
	CLKRDY_B       = reg.Bit(19, reg.RO, CTRL1, "CLKRDY_B").Doc("TimerB clock ready status")
	EVENT_SEL_B    = reg.Bits(20, 22, reg.RW, CTRL1, "EVENT_SEL_B").Doc("TimerB event selection")
	NEGTRIG_B      = reg.Bit(23, reg.RW, CTRL1, "NEGTRIG_B").Doc("TimerB negative edge trigger for event")
	IE_B           = reg.Bit(24, reg.RW, CTRL1, "IE_B").Doc("TimerB interrupt enable")
	CAPEVENT_SEL_B = reg.Bits(25, 26, reg.RW, CTRL1, "CAPEVENT_SEL_B").Doc("TimerB event capture selection")
	SW_CAPEVENT_B  = reg.Bit(27, reg.RW, CTRL1, "SW_CAPEVENT_B").Doc("TimerB software event capture")
	WE_B           = reg.Bit(28, reg.RW, CTRL1, "WE_B").Doc("TimerB wake-up function")
	CASCADE        = reg.Bit(31, reg.RW, CTRL1, "CASCADE").Doc("32-bit cascade timer enable")
)

// WKFL (Table 19-16)
var (
	WKFL_A = reg.Bit(0, reg.RW1C, WKFL, "WKFL_A").Doc("TimerA wake-up event")
	WKFL_B = reg.Bit(16, reg.RW1C, WKFL, "WKFL_B").Doc("TimerB wake-up event")
)
