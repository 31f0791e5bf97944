package interpreter

import "fmt"

// evalBinary applies a BOP symbol to the left and right operands.
// Comparisons and logic yield 1 or 0.
func evalBinary(symbol string, left, right int) (int, error) {
	switch symbol {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		// Go truncates toward zero
		return left / right, nil
	case "==":
		return boolInt(left == right), nil
	case "!=":
		return boolInt(left != right), nil
	case "<=":
		return boolInt(left <= right), nil
	case "<":
		return boolInt(left < right), nil
	case ">=":
		return boolInt(left >= right), nil
	case ">":
		return boolInt(left > right), nil
	case "|":
		return boolInt(left != 0 || right != 0), nil
	case "&":
		return boolInt(left != 0 && right != 0), nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownOperator, symbol)
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
