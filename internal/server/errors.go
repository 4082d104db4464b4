// SPDX-License-Identifier: Apache-2.0

package server

import "errors"

// errNoServersAreCreated is returned when the configuration yields no
// listen address to serve on.
var errNoServersAreCreated = errors.New("no servers are created")
