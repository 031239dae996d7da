package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/qtrnm/calceval"
)

func main() {
	log.SetFlags(0)
	var (
		inname string
		rad    bool
		echo   bool
		ans    float64
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&rad, "rad", false, "interpret trigonometry in radians instead of degrees")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.Float64Var(&ans, "ans", 0, "initial value of ans")
	flag.Parse()

	mode := calceval.Degrees
	if rad {
		mode = calceval.Radians
	}

	eval := func(src string) {
		if echo {
			if e, err := calceval.Parse(strings.NewReader(calceval.Normalize(src))); err == nil {
				fmt.Printf("%v : ", e)
			}
		}
		r, err := calceval.Evaluate(src, mode, ans)
		if err != nil {
			fmt.Println(err)
			return
		}
		ans = r.Value
		fmt.Println(r.Formatted)
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			eval(arg)
		}
		return
	}

	in := os.Stdin
	if inname != "" && inname != "-" {
		f, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		eval(scan.Text())
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
}
