package facts

// @generated from interp_test.go

//go:generate go run scripts/gen_expects.go -- interp_test.go expects_test.go

import "time"

func withEvalOptions(opts ...Option) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withOptions(opts...)
	}
}

func withEvalStack(values ...Value) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withStack(values...)
	}
}

func withEvalWord(name string, body string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withWord(name, body)
	}
}

func withEvalTimeout(timeout time.Duration) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.withTimeout(timeout)
	}
}

func expectEvalError(err error) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectError(err)
	}
}

func expectEvalStack(values ...Value) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectStack(values...)
	}
}

func expectEvalWords(names ...string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectWords(names...)
	}
}

func expectEvalDefined(name string, def Definition) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectDefined(name, def)
	}
}

func expectEvalUndefined(name string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectUndefined(name)
	}
}

func expectEvalOutput(output string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectOutput(output)
	}
}

func expectEvalDump(dump string) func(evalTestCase) evalTestCase {
	return func(et evalTestCase) evalTestCase {
		return et.expectDump(dump)
	}
}
