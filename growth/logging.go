/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "github.com/tamaral/growthchart/logging"

var logger = logging.Logger(logging.SourceGrowth)
