package valued

import (
	"testing"

	"github.com/toolsfactory/go-result/pkg/result"
)

func TestSuccess_HoldsValue(t *testing.T) {
	t.Parallel()
	r := Success(5)
	if !r.IsSuccess() || r.IsFaulted() || r.Value() != 5 {
		t.Fatalf("unexpected state: success=%v value=%v", r.IsSuccess(), r.Value())
	}
	if len(r.Errors()) != 0 {
		t.Fatalf("successful result must have no errors: %v", r.Errors())
	}
}

func TestFailure_Default(t *testing.T) {
	t.Parallel()
	r := Failure[int]()
	if !r.IsFaulted() {
		t.Fatalf("expected faulted")
	}
	if errs := r.Errors(); len(errs) != 1 || errs[0] != result.ErrDefault {
		t.Fatalf("expected [ErrDefault], got: %v", errs)
	}
}

func TestFailureText(t *testing.T) {
	t.Parallel()
	r := FailureText[string]("no such user")
	if !r.IsFaulted() || r.RootError().Message() != "no such user" {
		t.Fatalf("unexpected result: %v", r.Errors())
	}
}

func TestFailureWithAndFrom(t *testing.T) {
	t.Parallel()
	e1, e2 := result.NewError("one"), result.NewError("two")

	if r := FailureWith[int](e1); r.RootError() != e1 {
		t.Fatalf("FailureWith must carry the given error")
	}

	r := FailureFrom[int]([]*result.Error{e1, e2})
	errs := r.Errors()
	if len(errs) != 2 || errs[0] != e1 || errs[1] != e2 {
		t.Fatalf("FailureFrom must preserve order, got: %v", errs)
	}
}

func TestValue_PanicsWhenFaulted(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic reading the value of a faulted result")
		}
	}()
	Failure[int]().Value()
}

func TestGet(t *testing.T) {
	t.Parallel()
	if v, ok := Success("hi").Get(); !ok || v != "hi" {
		t.Fatalf("expected (hi, true), got (%v, %v)", v, ok)
	}
	if v, ok := Failure[string]().Get(); ok || v != "" {
		t.Fatalf("expected zero value and false, got (%v, %v)", v, ok)
	}
}

func TestRootError_PanicsOnSuccess(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic reading root error of a successful result")
		}
	}()
	Success(1).RootError()
}

func TestRootError_FallsBackToDefault(t *testing.T) {
	t.Parallel()
	r := FailureFrom[int](nil)
	if r.RootError() != result.ErrDefault {
		t.Fatalf("root error of an error-less faulted result must be ErrDefault")
	}
}

func TestAddError_ClearsValue(t *testing.T) {
	t.Parallel()
	e1, e2, e3 := result.NewError("one"), result.NewError("two"), result.NewError("three")

	r := Success(41)
	if r.AddErrors([]*result.Error{e1, e2}) != r {
		t.Fatalf("AddErrors must return the receiver")
	}
	if !r.IsFaulted() {
		t.Fatalf("expected faulted after AddErrors")
	}
	if v, ok := r.Get(); ok || v != 0 {
		t.Fatalf("faulted result must not retain stale value, got (%v, %v)", v, ok)
	}

	r.AddError(e3)
	errs := r.Errors()
	if len(errs) != 3 || errs[0] != e1 || errs[1] != e2 || errs[2] != e3 {
		t.Fatalf("expected [one two three] in order, got: %v", errs)
	}
}

func TestCombine_ClearsValueAndOrders(t *testing.T) {
	t.Parallel()
	eA, eB := result.NewError("A"), result.NewError("B")

	r := Success("payload").Combine(result.FailureWith(eA), FailureWith[int](eB))
	if !r.IsFaulted() {
		t.Fatalf("expected faulted after combining faulted results")
	}
	if v, ok := r.Get(); ok || v != "" {
		t.Fatalf("value must be cleared on fault, got (%v, %v)", v, ok)
	}
	errs := r.Errors()
	if len(errs) != 2 || errs[0] != eA || errs[1] != eB {
		t.Fatalf("expected [A B] in argument order, got: %v", errs)
	}
}

func TestCombine_SuccessArgumentsIgnored(t *testing.T) {
	t.Parallel()
	r := Success(7).Combine(result.Success(), Success("ok"))
	if !r.IsSuccess() || r.Value() != 7 {
		t.Fatalf("combining only successes must not change the result")
	}
}

func TestSatisfiesFallible(t *testing.T) {
	t.Parallel()
	var f result.Fallible = Failure[int]()
	if !f.IsFaulted() {
		t.Fatalf("valued result must satisfy result.Fallible")
	}
}
