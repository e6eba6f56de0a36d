//
// Copyright (c) 2020 Jason S. McMullan <jason.mcmullan@gmail.com>
//

package main

import (
	_ "github.com/ezrec/bbtdecrypt/ctable"
	_ "github.com/ezrec/bbtdecrypt/gotable"
)
