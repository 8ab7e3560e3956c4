package shaderutil

import (
	"fmt"
	"strings"
)

// Legacy vertex declaration token layout.
const (
	declTokenEnd        = 0xFFFFFFFF
	declTokenTypeShift  = 29
	declTokenStreamData = 2
	declSkipFlag        = 1 << 28
	declRegisterMask    = 0x1F
)

var registerUsage = [...]string{
	0:  "position",
	1:  "blendweight",
	2:  "blendindices",
	3:  "normal",
	4:  "psize",
	5:  "color",
	6:  "color1",
	7:  "texcoord",
	8:  "texcoord1",
	9:  "texcoord2",
	10: "texcoord3",
	11: "texcoord4",
	12: "texcoord5",
	13: "texcoord6",
	14: "texcoord7",
	15: "position1",
	16: "normal1",
}

// InputRegisters returns the input registers a legacy vertex declaration
// loads, in declaration order.
func InputRegisters(decl []uint32) []uint32 {
	var regs []uint32
	for _, tok := range decl {
		if tok == declTokenEnd {
			break
		}
		if tok>>declTokenTypeShift == declTokenStreamData && tok&declSkipFlag == 0 {
			regs = append(regs, tok&declRegisterMask)
		}
	}
	return regs
}

// TranslateVertexShader converts legacy vertex shader bytecode to the modern
// generation, declaring the inputs named by decl.
func TranslateVertexShader(asm Assembler, decl, code []uint32) ([]uint32, error) {
	src, err := asm.Disassemble(code)
	if err != nil {
		return nil, fmt.Errorf("shaderutil: disassemble vertex shader: %w", err)
	}
	var dcl []string
	for _, reg := range InputRegisters(decl) {
		if int(reg) >= len(registerUsage) {
			return nil, fmt.Errorf("shaderutil: vertex input register v%d out of range", reg)
		}
		dcl = append(dcl, fmt.Sprintf("dcl_%s v%d", registerUsage[reg], reg))
	}
	out, err := asm.Assemble(insertAfterVersion(stripComments(src), dcl))
	if err != nil {
		return nil, fmt.Errorf("shaderutil: assemble vertex shader: %w", err)
	}
	return out, nil
}

// TranslatePixelShader converts legacy pixel shader bytecode to the modern
// generation.
func TranslatePixelShader(asm Assembler, code []uint32) ([]uint32, error) {
	src, err := asm.Disassemble(code)
	if err != nil {
		return nil, fmt.Errorf("shaderutil: disassemble pixel shader: %w", err)
	}
	out, err := asm.Assemble(stripComments(src))
	if err != nil {
		return nil, fmt.Errorf("shaderutil: assemble pixel shader: %w", err)
	}
	return out, nil
}

func stripComments(src string) string {
	var b strings.Builder
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		b.WriteString(trimmed)
		b.WriteByte('\n')
	}
	return b.String()
}

func insertAfterVersion(src string, lines []string) string {
	if len(lines) == 0 {
		return src
	}
	head, rest, found := strings.Cut(src, "\n")
	if !found {
		return src + "\n" + strings.Join(lines, "\n") + "\n"
	}
	return head + "\n" + strings.Join(lines, "\n") + "\n" + rest
}
