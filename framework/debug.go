/*
 * nandsim - Plan construction exported for single-step debugging.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package framework

// PlanWrite builds (without running) the instruction plan Write would
// execute, so a step debugger can walk it one instruction at a time.
func (f *Framework) PlanWrite(buf []byte, offset, size int) Plan {
	return f.buildWritePlan(buf[:size], offset, size)
}

// PlanRead builds (without running) the instruction plan Read would
// execute.
func (f *Framework) PlanRead(buf []byte, offset, size int) Plan {
	return f.buildReadPlan(buf[:size], offset, size)
}

// PlanErase builds (without running) the instruction plan Erase would
// execute.
func (f *Framework) PlanErase(offset, size int) Plan {
	return f.buildErasePlan(offset, size)
}
