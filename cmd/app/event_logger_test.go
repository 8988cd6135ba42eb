// Copyright 2026 The maclab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxevent"
)

func TestEventLogger(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		uc     string
		evt    fxevent.Event
		expMsg string
	}{
		{
			uc:     "OnStartExecuting",
			evt:    &fxevent.OnStartExecuting{FunctionName: "start", CallerName: "refresh"},
			expMsg: `{"level":"trace","_functionName":"start","_caller":"refresh","message":"OnStart hook executing"}`,
		},
		{
			uc: "OnStartExecuted with error",
			evt: &fxevent.OnStartExecuted{
				FunctionName: "start", CallerName: "refresh", Err: errors.New("test error"), Runtime: time.Second,
			},
			expMsg: `{"level":"error","_functionName":"start","_caller":"refresh","error":"test error","message":"OnStart hook failed"}`,
		},
		{
			uc:     "OnStopExecuted without error",
			evt:    &fxevent.OnStopExecuted{FunctionName: "stop", CallerName: "refresh", Runtime: time.Second},
			expMsg: `{"level":"trace","_functionName":"stop","_caller":"refresh","_runtime":"1s","message":"OnStop hook executed"}`,
		},
		{
			uc:     "Supplied",
			evt:    &fxevent.Supplied{TypeName: "config.EnvVarPrefix", ModuleName: "app"},
			expMsg: `{"level":"trace","_type":"config.EnvVarPrefix","_module":"app","message":"Module supplied"}`,
		},
		{
			uc: "Provided",
			evt: &fxevent.Provided{
				ConstructorName: "NewClient", OutputTypeNames: []string{"*remote.Client"}, ModuleName: "remote",
			},
			expMsg: `{"level":"trace","_constructor":"NewClient","_module":"remote","_type":"*remote.Client","_private":false,"message":"Module provided"}`,
		},
		{
			uc:     "Provided with error",
			evt:    &fxevent.Provided{ModuleName: "remote", Err: errors.New("test error")},
			expMsg: `{"level":"error","_module":"remote","error":"test error","message":"Error encountered while providing module"}`,
		},
		{
			uc:     "Invoked with error",
			evt:    &fxevent.Invoked{FunctionName: "polling", ModuleName: "refresh", Trace: "trace", Err: errors.New("test error")},
			expMsg: `{"level":"error","_function":"polling","_module":"refresh","_stack":"trace","error":"test error","message":"Invoke failed"}`,
		},
		{
			uc:     "Stopping",
			evt:    &fxevent.Stopping{Signal: syscall.SIGINT},
			expMsg: `{"level":"trace","_signal":"INTERRUPT","message":"Received signal"}`,
		},
		{
			uc:     "RollingBack",
			evt:    &fxevent.RollingBack{StartErr: errors.New("test error")},
			expMsg: `{"level":"error","error":"test error","message":"Start failed, rolling back"}`,
		},
		{
			uc:     "Started",
			evt:    &fxevent.Started{},
			expMsg: `{"level":"trace","message":"Started"}`,
		},
		{
			uc:     "LoggerInitialized",
			evt:    &fxevent.LoggerInitialized{ConstructorName: "newEventLogger"},
			expMsg: `{"level":"trace","_function":"newEventLogger","message":"Initialized custom fxevent.Logger"}`,
		},
	} {
		t.Run(tc.uc, func(t *testing.T) {
			// GIVEN
			buf := bytes.NewBufferString("")
			evtLogger := &eventLogger{l: zerolog.New(buf).Level(zerolog.TraceLevel)}

			// WHEN
			evtLogger.LogEvent(tc.evt)

			// THEN
			assert.JSONEq(t, tc.expMsg, buf.String())
		})
	}
}
