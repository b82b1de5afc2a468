/*
 * Copyright 2026 Teo Amaral
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "github.com/tamaral/growthchart/logging"

var logger = logging.Logger(logging.SourceDB)
