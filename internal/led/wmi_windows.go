//go:build windows

package led

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// sFalse is returned by CoInitializeEx when COM is already initialised on
// this thread.
const sFalse = 0x00000001

// ExecQuery flags: 0 blocks until the result set is complete and keeps Count
// usable.
const wbemFlagSync = 0

// Set invokes SetState with the control word on every instance returned by
// the query. Zero instances is not an error.
func (w *wmi) Set(state State) error {
	// COM apartments are per OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || (oleErr.Code() != ole.S_OK && oleErr.Code() != sFalse) {
			return fmt.Errorf("%w: CoInitializeEx: %v", ErrUnavailable, err)
		}
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return fmt.Errorf("%w: create SWbemLocator: %v", ErrUnavailable, err)
	}
	defer unknown.Release()

	locator, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("%w: query SWbemLocator: %v", ErrUnavailable, err)
	}
	defer locator.Release()

	serviceRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, w.namespace)
	if err != nil {
		return fmt.Errorf("%w: connect to %s: %v", ErrUnavailable, w.namespace, err)
	}
	service := serviceRaw.ToIDispatch()
	defer serviceRaw.Clear()

	resultRaw, err := oleutil.CallMethod(service, "ExecQuery", w.query, "WQL", wbemFlagSync)
	if err != nil {
		return fmt.Errorf("query %q: %w", w.query, err)
	}
	result := resultRaw.ToIDispatch()
	defer resultRaw.Clear()

	countVar, err := oleutil.GetProperty(result, "Count")
	if err != nil {
		return fmt.Errorf("count %q results: %w", w.query, err)
	}
	defer countVar.Clear()
	count := int(countVar.Val)

	if w.logger != nil {
		w.logger.Debug("WMI query complete", "query", w.query, "instances", count)
	}

	word := int32(state.Word())
	for i := 0; i < count; i++ {
		if err := w.invoke(result, i, word); err != nil {
			return err
		}
	}

	return nil
}

// invoke calls the method on the i-th instance of the result set.
func (w *wmi) invoke(result *ole.IDispatch, i int, word int32) error {
	itemRaw, err := oleutil.CallMethod(result, "ItemIndex", i)
	if err != nil {
		return fmt.Errorf("fetch instance %d: %w", i, err)
	}
	defer itemRaw.Clear()
	item := itemRaw.ToIDispatch()

	ret, err := oleutil.CallMethod(item, w.method, word)
	if err != nil {
		return fmt.Errorf("%s on instance %d: %w", w.method, i, err)
	}
	defer ret.Clear()

	switch ret.VT {
	case ole.VT_I1, ole.VT_UI1, ole.VT_I2, ole.VT_UI2, ole.VT_I4, ole.VT_UI4,
		ole.VT_I8, ole.VT_UI8, ole.VT_INT, ole.VT_UINT:
		if w.logger != nil {
			w.logger.Debug("SetState returned", "instance", i, "value", fmt.Sprintf("0x%08x", uint32(ret.Val)))
		}
		return checkStatus(uint32(ret.Val))
	default:
		return nil
	}
}
